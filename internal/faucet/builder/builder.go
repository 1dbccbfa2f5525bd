package builder

import (
	"fmt"
	"strconv"

	"github.com/suifaucet/faucet-backend/internal/faucet/config"
	"github.com/suifaucet/faucet-backend/internal/faucet/validation"
	"github.com/suifaucet/faucet-backend/pkg/client/sui"
)

const faucetModule = "faucet"

// Build maps a validated request onto the Move call for the active
// mode. Argument order is fixed by the contracts; reordering breaks
// on-chain execution.
//
// direct:        <FAUCET_PACKAGE>::faucet::request_tokens_for(
//                    faucet, recipient, amount, clock)
// generic-asset: <STABLECOIN_PACKAGE>::faucet::request_for<CoinType>(
//                    faucet, treasury, recipient, amount, clock)
func Build(req validation.Request, cfg *config.FaucetConfig) (sui.MoveCall, error) {
	amount := strconv.FormatUint(req.Amount, 10)

	switch cfg.Mode() {
	case config.ModeDirect:
		return sui.MoveCall{
			PackageID: cfg.FaucetPackage(),
			Module:    faucetModule,
			Function:  "request_tokens_for",
			Arguments: []interface{}{
				cfg.FaucetID(),
				req.Recipient,
				amount,
				cfg.ClockID(),
			},
		}, nil
	case config.ModeGeneric:
		return sui.MoveCall{
			PackageID:     cfg.StablecoinPackage(),
			Module:        faucetModule,
			Function:      "request_for",
			TypeArguments: []string{cfg.CoinType()},
			Arguments: []interface{}{
				cfg.FaucetID(),
				cfg.TreasuryID(),
				req.Recipient,
				amount,
				cfg.ClockID(),
			},
		}, nil
	default:
		return sui.MoveCall{}, fmt.Errorf("faucet is not configured, cannot build a call")
	}
}
