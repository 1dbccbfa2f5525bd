package faucet

import (
	"context"
	stderrors "errors"
	"regexp"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/suifaucet/faucet-backend/pkg/errors"
)

// ErrBusy is returned while a previous request is still in flight.
// Nothing is queued or canceled; the caller retries after completion.
var ErrBusy = stderrors.New("a request is already in flight")

var (
	ErrBadRecipient = stderrors.New("recipient is not a hex address")
	ErrBadAmount    = stderrors.New("amount must be a positive decimal")
)

// usdc has 6 decimals; one token is 10^6 base units
const assetDecimals = 6

var hexAddressPattern = regexp.MustCompile("^0x[0-9a-fA-F]{2,}$")

var maxUint64 = decimal.RequireFromString("18446744073709551615")

// Sent records what the last successful request transferred, for
// display next to the digest.
type Sent struct {
	Recipient string
	Amount    decimal.Decimal
}

// Form models the request form: pending input, in-flight status and
// the last outcome. Exactly one request runs at a time; on completion
// exactly one of digest/error is set.
type Form struct {
	client *Client

	mu         sync.Mutex
	amount     string
	recipient  string
	busy       bool
	lastDigest string
	lastError  *errors.NormalizedError
	lastSent   *Sent
}

func NewForm(client *Client) *Form {
	return &Form{
		client: client,
		amount: "100",
	}
}

func (f *Form) SetAmount(amount string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.amount = amount
}

func (f *Form) SetRecipient(recipient string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipient = recipient
}

func (f *Form) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

func (f *Form) LastDigest() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastDigest
}

func (f *Form) LastError() *errors.NormalizedError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

func (f *Form) LastSent() *Sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSent
}

// CanRequest mirrors the submit control's enabled state: valid-looking
// input and nothing in flight.
func (f *Form) CanRequest() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return false
	}
	if !hexAddressPattern.MatchString(f.recipient) {
		return false
	}
	amount, err := decimal.NewFromString(f.amount)
	return err == nil && amount.Sign() > 0
}

// Request submits the current form input once. Input problems are
// rejected before any network call and leave the last outcome
// untouched. The human decimal amount converts to base units by
// truncation: floor(amount * 10^6).
func (f *Form) Request(ctx context.Context) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrBusy
	}
	f.busy = true
	recipient := f.recipient
	amountText := f.amount
	f.mu.Unlock()

	clearBusy := func() {
		f.mu.Lock()
		f.busy = false
		f.mu.Unlock()
	}

	if !hexAddressPattern.MatchString(recipient) {
		clearBusy()
		return ErrBadRecipient
	}
	humanAmount, err := decimal.NewFromString(amountText)
	if err != nil || humanAmount.Sign() <= 0 {
		clearBusy()
		return ErrBadAmount
	}
	baseUnits := humanAmount.Shift(assetDecimals).Floor()
	if baseUnits.Sign() <= 0 || baseUnits.Cmp(maxUint64) > 0 {
		clearBusy()
		return ErrBadAmount
	}

	digest, err := f.client.RequestTokens(ctx, recipient, baseUnits.BigInt().Uint64())

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		normalized := errors.Normalize(err.Error())
		f.lastError = &normalized
		f.lastDigest = ""
		return err
	}
	f.lastDigest = digest
	f.lastError = nil
	f.lastSent = &Sent{Recipient: recipient, Amount: humanAmount}
	return nil
}
