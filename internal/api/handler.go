// Package api exposes the pattern engine over HTTP for upstream
// services: submit extracted statement text, get back parsed
// transactions. There is no auth here; the deployment fronts this with
// the platform's gateway.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/casalfin/statement-engine/internal/engine"
	"github.com/casalfin/statement-engine/internal/types"
)

// ParseRequest is the body of POST /api/parse
type ParseRequest struct {
	// Text is the extracted statement text
	Text string `json:"text"`
	// Language is an optional hint (pt, en, es)
	Language string `json:"language,omitempty"`
	// Bank optionally forces a registry pattern, skipping detection
	Bank string `json:"bank,omitempty"`
}

// ParseResponse is the JSON response from /api/parse
type ParseResponse struct {
	Success        bool                   `json:"success"`
	Error          string                 `json:"error,omitempty"`
	Bank           string                 `json:"bank,omitempty"`
	BankName       string                 `json:"bank_name,omitempty"`
	Country        string                 `json:"country,omitempty"`
	Currency       string                 `json:"currency,omitempty"`
	Transactions   []types.Transaction    `json:"transactions"`
	Raw            []types.RawTransaction `json:"raw,omitempty"`
	Count          int                    `json:"count"`
	DateFailures   int                    `json:"date_failures"`
	AmountFailures int                    `json:"amount_failures"`
	Unresolved     int                    `json:"unresolved"`
}

// BankInfo describes one registry entry in /api/banks responses
type BankInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
}

// Handler holds the HTTP handlers for the API
type Handler struct {
	engine *engine.Engine
	logger *log.Logger
}

// NewHandler creates a Handler around an engine
func NewHandler(eng *engine.Engine, logger *log.Logger) *Handler {
	return &Handler{engine: eng, logger: logger}
}

// RegisterRoutes sets up the HTTP routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/parse", h.handleParse).Methods(http.MethodPost)
	r.HandleFunc("/api/banks", h.handleBanks).Methods(http.MethodGet)
	r.HandleFunc("/api/health", h.handleHealth).Methods(http.MethodGet)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleBanks(w http.ResponseWriter, r *http.Request) {
	banks := h.engine.Registry().All()
	if country := r.URL.Query().Get("country"); country != "" {
		banks = h.engine.Registry().ByCountry(country)
	}

	out := make([]BankInfo, 0, len(banks))
	for _, b := range banks {
		out = append(out, BankInfo{ID: b.ID, Name: b.Name, Country: b.Country, Currency: b.Currency})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	var result engine.Result
	var err error
	if req.Bank != "" {
		bank, ok := h.engine.Registry().ByID(req.Bank)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown bank id")
			return
		}
		result, err = h.engine.ParseWith(r.Context(), req.Text, bank)
	} else {
		result, err = h.engine.Parse(r.Context(), req.Text, req.Language)
	}
	if err != nil {
		h.logger.Error("parse failed", "error", err)
		writeError(w, http.StatusInternalServerError, "parse failed")
		return
	}

	resp := ParseResponse{
		Success:        true,
		Transactions:   result.Transactions,
		Raw:            result.Raw,
		Count:          len(result.Transactions),
		DateFailures:   result.DateFailures,
		AmountFailures: result.AmountFailures,
		Unresolved:     result.Unresolved,
	}
	if resp.Transactions == nil {
		resp.Transactions = []types.Transaction{}
	}
	if result.Bank != nil {
		resp.Bank = result.Bank.ID
		resp.BankName = result.Bank.Name
		resp.Country = result.Bank.Country
		resp.Currency = result.Bank.Currency
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ParseResponse{Success: false, Error: msg, Transactions: []types.Transaction{}})
}
