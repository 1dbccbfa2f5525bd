package errors

import "strings"

const (
	ErrInvalidRequestBody = "Invalid request body"
	ErrInvalidRecipient   = "Invalid recipient"
	ErrInvalidAmount      = "Invalid amount"
	ErrServerNotSigner    = "Server signer not configured"
	ErrFaucetNotSet       = "Faucet not configured"
)

// Category classifies a raw submission failure into one of a closed
// set of user-facing buckets. The same classification runs on both
// sides of the wire: the server logs it, the client displays it, and
// both must agree on the same underlying failure.
type Category string

const (
	RateLimited           Category = "rate_limited"
	ConfigurationMismatch Category = "configuration_mismatch"
	SimulationFailed      Category = "simulation_failed"
	Unknown               Category = "unknown"
)

// NormalizedError is a submission failure with its category attached.
// Raw keeps the upstream message verbatim for logs and Unknown display.
type NormalizedError struct {
	Category Category
	Raw      string
}

// Normalize maps a raw fullnode failure message onto a Category.
// First match wins; the trigger substrings track the fullnode's
// current error vocabulary and are deliberately not extended beyond
// these four cases.
func Normalize(rawMessage string) NormalizedError {
	switch {
	case strings.Contains(rawMessage, "MoveAbort") && strings.Contains(rawMessage, "code 1"):
		return NormalizedError{Category: RateLimited, Raw: rawMessage}
	case strings.Contains(rawMessage, "TypeMismatch"):
		return NormalizedError{Category: ConfigurationMismatch, Raw: rawMessage}
	case strings.Contains(rawMessage, "Dry run failed"):
		return NormalizedError{Category: SimulationFailed, Raw: rawMessage}
	default:
		return NormalizedError{Category: Unknown, Raw: rawMessage}
	}
}

// Message returns the stable user-facing text for the error. Unknown
// passes the original message through verbatim.
func (e NormalizedError) Message() string {
	switch e.Category {
	case RateLimited:
		return "Rate limit reached, wait for the cooldown before requesting again"
	case ConfigurationMismatch:
		return "Faucet coin type mismatch, check the server configuration"
	case SimulationFailed:
		return "Transaction dry run failed"
	default:
		return e.Raw
	}
}

func (e NormalizedError) Error() string {
	return e.Raw
}
