package config

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/suifaucet/faucet-backend/pkg/env"
)

// Mode selects the call shape the faucet submits. Resolved once at
// startup from which configuration fields are populated.
type Mode int

const (
	ModeUnconfigured Mode = iota
	ModeDirect
	ModeGeneric
)

func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeGeneric:
		return "generic-asset"
	default:
		return "unconfigured"
	}
}

// Environment variable names. TREASURY and friends follow the names
// the deployment scripts print, so operators can paste them straight
// into .env.
const (
	VarPort              = "PORT"
	VarFullnodeURL       = "FULLNODE_URL"
	VarCORSOrigin        = "CORS_ORIGIN"
	VarFaucetPackage     = "FAUCET_PACKAGE"
	VarStablecoinPackage = "STABLECOIN_PACKAGE"
	VarUSDCPackage       = "USDC_PACKAGE"
	VarCoinType          = "COIN_TYPE"
	VarFaucetID          = "FAUCET_ID"
	VarTreasury          = "TREASURY"
	VarClock             = "CLOCK"
	VarPrivateKey        = "SUI_PRIVATE_KEY"
	VarGasBudget         = "GAS_BUDGET"
	VarDevMode           = "DEV_MODE"
)

type FaucetConfig struct {
	devMode bool

	// Port at which the faucet API will be running
	port string

	// Sui fullnode JSON-RPC endpoint
	fullnodeURL string

	// Browser origin allowed by CORS
	corsOrigin string

	// Contract identifiers; which subset is populated decides the mode
	faucetPackage     string
	stablecoinPackage string
	coinType          string
	faucetID          string
	treasuryID        string
	clockID           string

	// Server signing credential, never exposed past this package
	privateKey string

	gasBudget uint64
}

// Load reads the environment (a .env file is honored when present)
// into an immutable FaucetConfig. Missing contract identifiers are not
// a startup failure: the server boots unconfigured and reports the
// missing variables per request.
func Load() (*FaucetConfig, error) {
	// .env is optional, the environment may be set by the runtime
	_ = godotenv.Load()

	cfg := &FaucetConfig{
		devMode:           env.GetEnvBool(VarDevMode, false),
		port:              env.GetEnvString(VarPort, "8787"),
		fullnodeURL:       env.GetEnvString(VarFullnodeURL, "https://fullnode.devnet.sui.io:443"),
		corsOrigin:        env.GetEnvString(VarCORSOrigin, "http://localhost:3000"),
		faucetPackage:     env.GetEnvString(VarFaucetPackage, ""),
		stablecoinPackage: env.GetEnvString(VarStablecoinPackage, ""),
		coinType:          env.GetEnvString(VarCoinType, ""),
		faucetID:          env.GetEnvString(VarFaucetID, ""),
		treasuryID:        env.GetEnvString(VarTreasury, ""),
		clockID:           env.GetEnvString(VarClock, "0x6"),
		privateKey:        env.GetEnvString(VarPrivateKey, ""),
		gasBudget:         uint64(env.GetEnvInt(VarGasBudget, 0)),
	}

	// The asset's canonical type tag can be spelled out or derived
	// from the package that published it.
	if cfg.coinType == "" {
		if usdcPackage := env.GetEnvString(VarUSDCPackage, ""); usdcPackage != "" {
			cfg.coinType = fmt.Sprintf("%s::usdc::USDC", usdcPackage)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// validate rejects malformed values. Absent values are legal here;
// completeness is the mode check's concern.
func (c *FaucetConfig) validate() error {
	if !env.IsValidPort(c.port) {
		return fmt.Errorf("invalid port: %s", c.port)
	}
	if !env.IsValidURL(c.fullnodeURL) {
		return fmt.Errorf("invalid fullnode URL: %s", c.fullnodeURL)
	}
	for name, id := range map[string]string{
		VarFaucetPackage:     c.faucetPackage,
		VarStablecoinPackage: c.stablecoinPackage,
		VarFaucetID:          c.faucetID,
		VarTreasury:          c.treasuryID,
		VarClock:             c.clockID,
	} {
		if !env.IsEmpty(id) && !env.IsValidSuiObjectID(id) {
			return fmt.Errorf("%s is not a valid object ID: %s", name, truncateID(id))
		}
	}
	if !env.IsEmpty(c.coinType) && !env.IsValidTypeTag(c.coinType) {
		return fmt.Errorf("%s is not a valid type tag: %s", VarCoinType, c.coinType)
	}
	return nil
}

// Mode resolves the active call shape: generic-asset when its whole
// field set is present, else direct, else unconfigured. The signing
// credential is required by both modes.
func (c *FaucetConfig) Mode() Mode {
	if c.privateKey == "" {
		return ModeUnconfigured
	}
	if c.stablecoinPackage != "" && c.treasuryID != "" && c.coinType != "" && c.faucetID != "" {
		return ModeGeneric
	}
	if c.faucetPackage != "" && c.faucetID != "" {
		return ModeDirect
	}
	return ModeUnconfigured
}

// genericIntended reports whether the operator started wiring the
// generic-asset mode, so missing-variable reporting names the fields
// of the mode they were going for.
func (c *FaucetConfig) genericIntended() bool {
	return c.stablecoinPackage != "" || c.treasuryID != "" || c.coinType != ""
}

// MissingVars lists the environment variables blocking the intended
// mode. Empty when the server is fully configured.
func (c *FaucetConfig) MissingVars() []string {
	type requiredVar struct {
		name  string
		value string
	}

	var required []requiredVar
	if c.genericIntended() {
		required = []requiredVar{
			{VarStablecoinPackage, c.stablecoinPackage},
			{VarFaucetID, c.faucetID},
			{VarTreasury, c.treasuryID},
			{VarCoinType, c.coinType},
		}
	} else {
		required = []requiredVar{
			{VarFaucetPackage, c.faucetPackage},
			{VarFaucetID, c.faucetID},
		}
	}

	var missing []string
	for _, v := range required {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if c.privateKey == "" {
		missing = append(missing, VarPrivateKey)
	}
	return missing
}

func (c *FaucetConfig) IsDevMode() bool           { return c.devMode }
func (c *FaucetConfig) Port() string              { return c.port }
func (c *FaucetConfig) FullnodeURL() string       { return c.fullnodeURL }
func (c *FaucetConfig) CORSOrigin() string        { return c.corsOrigin }
func (c *FaucetConfig) PrivateKey() string        { return c.privateKey }
func (c *FaucetConfig) GasBudget() uint64         { return c.gasBudget }
func (c *FaucetConfig) FaucetPackage() string     { return c.faucetPackage }
func (c *FaucetConfig) StablecoinPackage() string { return c.stablecoinPackage }
func (c *FaucetConfig) CoinType() string          { return c.coinType }
func (c *FaucetConfig) FaucetID() string          { return c.faucetID }
func (c *FaucetConfig) TreasuryID() string        { return c.treasuryID }
func (c *FaucetConfig) ClockID() string           { return c.clockID }

// truncateID shortens an object ID for display without leaking a full
// misconfigured value into logs or responses.
func truncateID(id string) string {
	if len(id) <= 10 {
		return id
	}
	return id[:10] + "..."
}
