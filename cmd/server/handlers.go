package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trading-dashboard/internal/auth"
	"trading-dashboard/internal/metrics"
	"trading-dashboard/internal/models"
	"trading-dashboard/internal/settings"
)

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	log      *zap.Logger
	db       *gorm.DB
	auth     *auth.Authenticator
	settings *settings.Store
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(log *zap.Logger, db *gorm.DB, a *auth.Authenticator, s *settings.Store) *APIHandler {
	return &APIHandler{log: log, db: db, auth: a, settings: s}
}

// Routes builds the API router. Reads are public; the status write and the
// trade detail table require credentials on every request — there are no
// sessions, each call re-authenticates.
func (h *APIHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.LoginHandler)
	r.Get("/status", h.StatusHandler)
	r.Get("/metrics", h.MetricsHandler)
	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Put("/status", h.SetStatusHandler)
		r.Get("/trades", h.TradesHandler)
	})
	return r
}

// requireAuth checks HTTP Basic credentials against the users table.
func (h *APIHandler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if ok {
			authenticated, err := h.auth.Authenticate(username, password)
			if err != nil {
				h.log.Error("Failed to check credentials", zap.Error(err))
				http.Error(w, "Failed to check credentials", http.StatusInternalServerError)
				return
			}
			if authenticated {
				next.ServeHTTP(w, r)
				return
			}
		}
		w.Header().Set("WWW-Authenticate", `Basic realm="dashboard"`)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Authenticated bool `json:"authenticated"`
}

// LoginHandler checks a username/password pair. The response is 200 with an
// authenticated flag either way: an unknown user and a wrong password look
// identical from the outside.
func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	authenticated, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		h.log.Error("Failed to check credentials", zap.Error(err))
		http.Error(w, "Failed to check credentials", http.StatusInternalServerError)
		return
	}

	writeJSON(w, loginResponse{Authenticated: authenticated})
}

type statusResponse struct {
	Status string `json:"status"`
}

// StatusHandler returns the current auto-trade status. Public: anyone may
// read the switch, only authenticated operators may flip it.
func (h *APIHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	status, err := h.settings.Status()
	if err != nil {
		h.log.Error("Failed to read auto-trade status", zap.Error(err))
		http.Error(w, "Failed to read status", http.StatusInternalServerError)
		return
	}
	writeJSON(w, statusResponse{Status: status})
}

// SetStatusHandler flips the auto-trade switch. Reached only through
// requireAuth. The write is advisory: the external trading process decides
// what to do with the flag.
func (h *APIHandler) SetStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req statusResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.settings.SetStatus(req.Status); err != nil {
		if errors.Is(err, settings.ErrInvalidStatus) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error("Failed to write auto-trade status", zap.Error(err))
		http.Error(w, "Failed to write status", http.StatusInternalServerError)
		return
	}

	h.log.Info("Auto-trade status changed", zap.String("status", req.Status))
	writeJSON(w, statusResponse{Status: req.Status})
}

type noDataResponse struct {
	NoData bool `json:"no_data"`
}

// MetricsHandler recomputes the full report from the trade log. Every call
// re-reads all transactions; nothing is cached between requests.
func (h *APIHandler) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.computeReport()
	if err != nil {
		http.Error(w, "Failed to get transactions", http.StatusInternalServerError)
		return
	}
	if report == nil {
		writeJSON(w, noDataResponse{NoData: true})
		return
	}

	// The detail table is auth-gated, the aggregates are not.
	report.Trades = nil
	writeJSON(w, report)
}

// TradesHandler returns the sorted detail table. Reached only through
// requireAuth.
func (h *APIHandler) TradesHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.computeReport()
	if err != nil {
		http.Error(w, "Failed to get transactions", http.StatusInternalServerError)
		return
	}
	if report == nil {
		writeJSON(w, []metrics.TradeRow{})
		return
	}
	writeJSON(w, report.Trades)
}

func (h *APIHandler) computeReport() (*metrics.Report, error) {
	var txs []models.Transaction
	if err := h.db.Find(&txs).Error; err != nil {
		h.log.Error("Failed to get transactions from database", zap.Error(err))
		return nil, err
	}
	return metrics.Compute(txs, h.log), nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
