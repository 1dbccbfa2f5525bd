package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

var (
	ErrInvalidRecipient = errors.New("Invalid recipient")
	ErrInvalidAmount    = errors.New("Invalid amount")
)

// recipient syntax: 0x prefix plus at least one hex byte. Checksums
// and on-chain existence are the network layer's problem.
var recipientPattern = regexp.MustCompile("^0x[0-9a-fA-F]{2,}$")

// RawRequest is the untrusted request body before validation. Fields
// are deliberately untyped: a recipient that is not a string is a
// validation failure, not a decoding failure.
type RawRequest struct {
	Recipient interface{} `json:"recipient"`
	Amount    interface{} `json:"amount"`
}

// Request is a validated faucet request. Amount is in base units.
type Request struct {
	Recipient string
	Amount    uint64
}

// Validate checks the raw request and either returns a normalized
// Request or one of ErrInvalidRecipient / ErrInvalidAmount. Pure and
// deterministic; nothing past this point sees unvalidated input.
func Validate(raw RawRequest) (Request, error) {
	recipient, ok := raw.Recipient.(string)
	if !ok || !recipientPattern.MatchString(recipient) {
		return Request{}, ErrInvalidRecipient
	}

	amount, ok := coerceAmount(raw.Amount)
	if !ok || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Request{}, ErrInvalidAmount
	}
	if amount >= math.MaxUint64 {
		return Request{}, ErrInvalidAmount
	}

	return Request{
		Recipient: recipient,
		Amount:    uint64(amount), // fractional base units truncate
	}, nil
}

func coerceAmount(v interface{}) (float64, bool) {
	switch amount := v.(type) {
	case float64:
		return amount, true
	case int:
		return float64(amount), true
	case int64:
		return float64(amount), true
	case uint64:
		return float64(amount), true
	case string:
		parsed, err := strconv.ParseFloat(amount, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
