package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantCategory Category
	}{
		{
			name:         "move abort code 1 is rate limited",
			raw:          "Error executing transaction: MoveAbort(MoveLocation { module: faucet }, code 1) in command 0",
			wantCategory: RateLimited,
		},
		{
			name:         "move abort with other code is unknown",
			raw:          "MoveAbort(MoveLocation { module: faucet }, code 3)",
			wantCategory: Unknown,
		},
		{
			name:         "type mismatch",
			raw:          "CommandArgumentError { arg_idx: 1, kind: TypeMismatch } in command 0",
			wantCategory: ConfigurationMismatch,
		},
		{
			name:         "dry run failure",
			raw:          "Dry run failed: insufficient gas",
			wantCategory: SimulationFailed,
		},
		{
			name:         "anything else passes through",
			raw:          "boom",
			wantCategory: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.raw, got.Raw)
		})
	}
}

func TestNormalizePriorityOrder(t *testing.T) {
	// A message carrying both rate-limit and mismatch markers must
	// classify as rate limited, the higher-priority match.
	got := Normalize("MoveAbort ... code 1 ... TypeMismatch")
	assert.Equal(t, RateLimited, got.Category)
}

func TestNormalizeIdempotent(t *testing.T) {
	first := Normalize("Dry run failed: x")
	second := Normalize("Dry run failed: x")
	assert.Equal(t, first, second)
}

func TestUnknownMessageVerbatim(t *testing.T) {
	got := Normalize("boom")
	assert.Equal(t, Unknown, got.Category)
	assert.Equal(t, "boom", got.Message())
}

func TestStableMessages(t *testing.T) {
	assert.NotEqual(t, Normalize("MoveAbort, code 1").Message(), "MoveAbort, code 1")
	assert.NotEmpty(t, Normalize("TypeMismatch").Message())
	assert.NotEmpty(t, Normalize("Dry run failed").Message())
}
