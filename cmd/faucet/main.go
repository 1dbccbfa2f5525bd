package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/suifaucet/faucet-backend/internal/faucet/api"
	"github.com/suifaucet/faucet-backend/internal/faucet/api/handlers"
	"github.com/suifaucet/faucet-backend/internal/faucet/config"
	"github.com/suifaucet/faucet-backend/pkg/client/sui"
	"github.com/suifaucet/faucet-backend/pkg/logging"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logging.InitServiceLogger(logging.LoggerConfig{
		ProcessName:   logging.FaucetProcess,
		IsDevelopment: cfg.IsDevMode(),
	}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logging.Shutdown()
	logger := logging.GetServiceLogger()

	logger.Info("Starting faucet backend...",
		"port", cfg.Port(),
		"fullnode", cfg.FullnodeURL(),
		"mode", cfg.Mode().String(),
	)

	gateway := buildGateway(cfg, logger)
	if gateway == nil {
		logger.Warn("Faucet is not fully configured, requests will be rejected",
			"missing", cfg.MissingVars(),
		)
	} else {
		defer gateway.Close()
		logger.Info("Signer ready", "address", gateway.Address())
	}

	server := api.NewServer(cfg, asGateway(gateway), logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port()),
		Handler: server.Router(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Infof("Faucet backend listening on http://localhost:%s", cfg.Port())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("HTTP server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("Server error received", "error", err)
	case sig := <-shutdown:
		logger.Info("Received shutdown signal", "signal", sig.String())
	}

	performGracefulShutdown(srv, logger)
}

// buildGateway loads the signing credential and connects to the
// fullnode. A missing credential is tolerated (the server boots
// unconfigured and reports it per request); a present but malformed
// one is an operator mistake and fatal.
func buildGateway(cfg *config.FaucetConfig, logger logging.Logger) *sui.Client {
	if cfg.PrivateKey() == "" {
		return nil
	}

	keypair, err := sui.LoadKeypair(cfg.PrivateKey())
	if err != nil {
		logger.Fatalf("Failed to load signing credential: %v", err)
	}

	client, err := sui.NewClient(context.Background(), cfg.FullnodeURL(), keypair, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to fullnode: %v", err)
	}
	if budget := cfg.GasBudget(); budget > 0 {
		client.SetGasBudget(budget)
	}
	return client
}

// asGateway converts a possibly-nil *sui.Client into the handler
// interface without producing a non-nil interface around a nil
// pointer.
func asGateway(client *sui.Client) handlers.Gateway {
	if client == nil {
		return nil
	}
	return client
}

func performGracefulShutdown(srv *http.Server, logger logging.Logger) {
	logger.Info("Initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
		if err := srv.Close(); err != nil {
			logger.Error("Forced HTTP server close error", "error", err)
		}
	}

	logger.Info("Shutdown complete")
}
