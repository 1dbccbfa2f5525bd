package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/suifaucet/faucet-backend/internal/faucet/builder"
	"github.com/suifaucet/faucet-backend/internal/faucet/config"
	"github.com/suifaucet/faucet-backend/internal/faucet/metrics"
	"github.com/suifaucet/faucet-backend/internal/faucet/validation"
	"github.com/suifaucet/faucet-backend/pkg/errors"
)

// RequestTokens handles POST /api/request: validate the body, build
// the Move call for the active mode, submit it once, and map the
// outcome onto 200/400/500.
func (h *Handler) RequestTokens(c *gin.Context) {
	start := time.Now()
	status := http.StatusOK
	defer func() {
		metrics.RequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
		metrics.RequestDuration.Observe(time.Since(start).Seconds())
	}()

	var raw validation.RawRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		status = http.StatusBadRequest
		c.String(status, errors.ErrInvalidRequestBody)
		return
	}

	req, err := validation.Validate(raw)
	if err != nil {
		status = http.StatusBadRequest
		// validation errors carry their user-facing reason
		c.String(status, err.Error())
		return
	}

	if h.gateway == nil || h.cfg.Mode() == config.ModeUnconfigured {
		missing := h.cfg.MissingVars()
		h.logger.Error("request rejected, faucet not configured", "missing", missing)
		status = http.StatusInternalServerError
		c.JSON(status, gin.H{
			"error":   errors.ErrFaucetNotSet,
			"missing": missing,
		})
		return
	}

	call, err := builder.Build(req, h.cfg)
	if err != nil {
		status = http.StatusInternalServerError
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	digest, err := h.gateway.ExecuteMoveCall(c.Request.Context(), call)
	if err != nil {
		normalized := errors.Normalize(err.Error())
		metrics.TrackSubmission(string(normalized.Category), err)
		h.logger.Error("transaction submission failed",
			"category", string(normalized.Category),
			"recipient", req.Recipient,
			"amount", req.Amount,
			"error", err.Error(),
		)
		status = http.StatusInternalServerError
		c.JSON(status, gin.H{
			"error":    normalized.Raw,
			"category": string(normalized.Category),
		})
		return
	}
	metrics.TrackSubmission("", nil)

	h.logger.Info("tokens sent",
		"digest", digest,
		"recipient", req.Recipient,
		"amount", req.Amount,
		"mode", h.cfg.Mode().String(),
	)
	c.JSON(http.StatusOK, gin.H{"digest": digest})
}
