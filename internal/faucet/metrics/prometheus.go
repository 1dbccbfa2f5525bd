package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	startTime = time.Now()

	// UptimeSeconds tracks the faucet service uptime in seconds
	UptimeSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "suifaucet",
		Subsystem: "backend",
		Name:      "uptime_seconds",
		Help:      "Time passed since the faucet backend started in seconds",
	})

	// HTTP request metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suifaucet",
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Token requests received, labeled by response status",
	}, []string{"status"})

	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "suifaucet",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "End to end token request latency",
		Buckets:   prometheus.DefBuckets,
	})

	// Submission metrics
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suifaucet",
		Subsystem: "backend",
		Name:      "submissions_total",
		Help:      "Transactions submitted to the fullnode (result=success/failure)",
	}, []string{"result"})

	SubmissionFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suifaucet",
		Subsystem: "backend",
		Name:      "submission_failures_total",
		Help:      "Failed submissions by normalized category",
	}, []string{"category"})
)

// StartCollection updates the uptime gauge in the background.
func StartCollection() {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			UptimeSeconds.Set(time.Since(startTime).Seconds())
		}
	}()
}

// TrackSubmission records one submission attempt.
func TrackSubmission(category string, err error) {
	if err != nil {
		SubmissionsTotal.WithLabelValues("failure").Inc()
		SubmissionFailuresTotal.WithLabelValues(category).Inc()
		return
	}
	SubmissionsTotal.WithLabelValues("success").Inc()
}
