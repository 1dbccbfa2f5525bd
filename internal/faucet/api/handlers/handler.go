package handlers

import (
	"context"

	"github.com/suifaucet/faucet-backend/internal/faucet/config"
	"github.com/suifaucet/faucet-backend/pkg/client/sui"
	"github.com/suifaucet/faucet-backend/pkg/logging"
)

// Gateway signs and submits one built call per request. Implemented
// by pkg/client/sui; stubbed in tests.
type Gateway interface {
	ExecuteMoveCall(ctx context.Context, call sui.MoveCall) (string, error)
	Address() string
}

type Handler struct {
	logger  logging.Logger
	cfg     *config.FaucetConfig
	gateway Gateway
}

// NewHandler wires the request pipeline. cfg and gateway are loaded
// once at process start and read-only afterwards; gateway may be nil
// when no valid signing credential was configured.
func NewHandler(logger logging.Logger, cfg *config.FaucetConfig, gateway Gateway) *Handler {
	return &Handler{
		logger:  logger,
		cfg:     cfg,
		gateway: gateway,
	}
}
