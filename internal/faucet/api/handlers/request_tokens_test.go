package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suifaucet/faucet-backend/internal/faucet/config"
	"github.com/suifaucet/faucet-backend/pkg/client/sui"
	"github.com/suifaucet/faucet-backend/pkg/logging"
)

const testKey = "9bf49a6a0755f953811fce125f2683d50429c3bb49e074147e0089a52eae155f"

// stubGateway records the call it received and plays back a canned
// outcome.
type stubGateway struct {
	digest   string
	err      error
	lastCall *sui.MoveCall
}

func (s *stubGateway) ExecuteMoveCall(_ context.Context, call sui.MoveCall) (string, error) {
	s.lastCall = &call
	if s.err != nil {
		return "", s.err
	}
	return s.digest, nil
}

func (s *stubGateway) Address() string { return "0x5e11e4" }

func pinEnv(t *testing.T, overrides map[string]string) {
	base := map[string]string{
		config.VarPort:              "8787",
		config.VarFullnodeURL:       "https://fullnode.devnet.sui.io:443",
		config.VarCORSOrigin:        "http://localhost:3000",
		config.VarClock:             "0x6",
		config.VarFaucetPackage:     "",
		config.VarStablecoinPackage: "",
		config.VarUSDCPackage:       "",
		config.VarCoinType:          "",
		config.VarFaucetID:          "",
		config.VarTreasury:          "",
		config.VarPrivateKey:        "",
	}
	for k, v := range overrides {
		base[k] = v
	}
	for k, v := range base {
		t.Setenv(k, v)
	}
}

func directEnv() map[string]string {
	return map[string]string{
		config.VarFaucetPackage: "0xdead",
		config.VarFaucetID:      "0xfacade",
		config.VarPrivateKey:    testKey,
	}
}

func setupRouter(t *testing.T, overrides map[string]string, gateway Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pinEnv(t, overrides)

	cfg, err := config.Load()
	require.NoError(t, err)

	handler := NewHandler(logging.NoopLogger{}, cfg, gateway)

	router := gin.New()
	router.POST("/api/request", handler.RequestTokens)
	router.GET("/health", handler.HandleHealth)
	return router
}

func postRequest(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/request", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestTokensSuccess(t *testing.T) {
	gateway := &stubGateway{digest: "abc123"}
	router := setupRouter(t, directEnv(), gateway)

	w := postRequest(router, `{"recipient":"0xabc1","amount":100000000}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "abc123", response["digest"])

	require.NotNil(t, gateway.lastCall)
	assert.Equal(t, "0xdead::faucet::request_tokens_for", gateway.lastCall.Target())
	assert.Equal(t, []interface{}{"0xfacade", "0xabc1", "100000000", "0x6"}, gateway.lastCall.Arguments)
}

func TestRequestTokensInvalidRecipient(t *testing.T) {
	gateway := &stubGateway{digest: "unused"}
	router := setupRouter(t, directEnv(), gateway)

	w := postRequest(router, `{"recipient":"bad","amount":100}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid recipient", w.Body.String())
	assert.Nil(t, gateway.lastCall)
}

func TestRequestTokensInvalidAmount(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero", `{"recipient":"0xabc1","amount":0}`},
		{"negative", `{"recipient":"0xabc1","amount":-1}`},
		{"non numeric", `{"recipient":"0xabc1","amount":"lots"}`},
		{"missing", `{"recipient":"0xabc1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t, directEnv(), &stubGateway{})
			w := postRequest(router, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid amount", w.Body.String())
		})
	}
}

func TestRequestTokensMalformedJSON(t *testing.T) {
	router := setupRouter(t, directEnv(), &stubGateway{})

	w := postRequest(router, "not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", w.Body.String())
}

func TestRequestTokensUnconfigured(t *testing.T) {
	// generic mode intended but TREASURY missing
	router := setupRouter(t, map[string]string{
		config.VarStablecoinPackage: "0xbeef",
		config.VarUSDCPackage:       "0xabcd",
		config.VarFaucetID:          "0xfacade",
		config.VarPrivateKey:        testKey,
	}, &stubGateway{})

	w := postRequest(router, `{"recipient":"0xabc1","amount":100}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var response struct {
		Error   string   `json:"error"`
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Faucet not configured", response.Error)
	assert.Contains(t, response.Missing, config.VarTreasury)
}

func TestRequestTokensNilGateway(t *testing.T) {
	router := setupRouter(t, directEnv(), nil)

	w := postRequest(router, `{"recipient":"0xabc1","amount":100}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestTokensSubmissionFailure(t *testing.T) {
	gateway := &stubGateway{
		err: errors.New("MoveAbort(MoveLocation { module: faucet }, code 1) in command 0"),
	}
	router := setupRouter(t, directEnv(), gateway)

	w := postRequest(router, `{"recipient":"0xabc1","amount":100}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var response struct {
		Error    string `json:"error"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Error, "MoveAbort")
	assert.Equal(t, "rate_limited", response.Category)
}

func TestRequestTokensGenericMode(t *testing.T) {
	gateway := &stubGateway{digest: "xyz789"}
	router := setupRouter(t, map[string]string{
		config.VarStablecoinPackage: "0xbeef",
		config.VarUSDCPackage:       "0xabcd",
		config.VarFaucetID:          "0xfacade",
		config.VarTreasury:          "0x7bea",
		config.VarPrivateKey:        testKey,
	}, gateway)

	w := postRequest(router, `{"recipient":"0xabc1","amount":100000000}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gateway.lastCall)
	assert.Equal(t, "0xbeef::faucet::request_for", gateway.lastCall.Target())
	assert.Equal(t, []string{"0xabcd::usdc::USDC"}, gateway.lastCall.TypeArguments)
	assert.Len(t, gateway.lastCall.Arguments, 5)
}

func TestHandleHealth(t *testing.T) {
	router := setupRouter(t, directEnv(), &stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, "direct", response["mode"])
	assert.Equal(t, "0x5e11e4", response["signer"])
}
