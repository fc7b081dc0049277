package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casalfin/statement-engine/internal/engine"
	"github.com/casalfin/statement-engine/internal/patterns"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	logger := log.New(io.Discard)
	eng := engine.New(patterns.Default(), logger, engine.Config{})
	router := mux.NewRouter()
	NewHandler(eng, logger).RegisterRoutes(router)
	return router
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestBanks(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/banks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var banks []BankInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &banks))
	assert.NotEmpty(t, banks)

	req = httptest.NewRequest(http.MethodGet, "/api/banks?country=ES", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &banks))
	require.NotEmpty(t, banks)
	for _, b := range banks {
		assert.Equal(t, "ES", b.Country)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/banks?country=ZZ", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &banks))
	assert.Empty(t, banks)
}

func parseRequest(t *testing.T, router *mux.Router, body ParseRequest) (*httptest.ResponseRecorder, ParseResponse) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/parse", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestParseStatement(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := parseRequest(t, router, ParseRequest{
		Text:     "Itaú Unibanco\n10/03/2024 COMPRA CARTÃO SUPERMERCADO 150,00\n",
		Language: "pt",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "itau_br", resp.Bank)
	assert.Equal(t, "BR", resp.Country)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "credit", string(resp.Transactions[0].Method))
}

func TestParseUnknownBankIsNotAnError(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := parseRequest(t, router, ParseRequest{Text: "some unrecognised statement"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Bank)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Transactions)
}

func TestParseWithForcedBank(t *testing.T) {
	router := newTestRouter(t)

	// No Chase header in the text; the caller picks the pattern
	rec, resp := parseRequest(t, router, ParseRequest{
		Text: "03/15/2024 CARD PURCHASE COFFEE SHOP $4.50\n",
		Bank: "chase_us",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "chase_us", resp.Bank)
	assert.Equal(t, 1, resp.Count)
}

func TestParseValidation(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := parseRequest(t, router, ParseRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)

	rec, resp = parseRequest(t, router, ParseRequest{Text: "x", Bank: "no_such_bank"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)

	req := httptest.NewRequest(http.MethodPost, "/api/parse", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
