package faucet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/suifaucet/faucet-backend/pkg/errors"
)

// DefaultBaseURL points at a locally running backend.
const DefaultBaseURL = "http://localhost:8787"

// Client talks to the faucet backend's single endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type requestBody struct {
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

type digestResponse struct {
	Digest string `json:"digest"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// RequestTokens posts one faucet request. amount is in base units.
// Failures come back as errors.NormalizedError so callers can show a
// stable message per category.
func (c *Client) RequestTokens(ctx context.Context, recipient string, amount uint64) (string, error) {
	payload, err := json.Marshal(requestBody{Recipient: recipient, Amount: amount})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/request", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Normalize(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Normalize(err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Normalize(extractMessage(body))
	}

	var result digestResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", errors.Normalize(string(body))
	}
	return result.Digest, nil
}

// extractMessage pulls the error text out of a failure body, which is
// either JSON {"error": ...} or plain text.
func extractMessage(body []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}
	return string(body)
}

// ShortDigest abbreviates a digest for display, keeping both ends.
func ShortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:8] + "…" + digest[len(digest)-6:]
	}
	return digest
}
