// Package handlers provides HTTP handlers for investment sizing.
package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/aristath/greenmix/internal/modules/sizing"
	"github.com/rs/zerolog"
)

// Handler handles sizing HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new sizing handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "sizing").Logger(),
	}
}

// OptimalRequest represents a request for the optimal investment range
type OptimalRequest struct {
	AnnualConsumption float64 `json:"annual_consumption"`
}

// HandleOptimal handles POST /api/investment/optimal
func (h *Handler) HandleOptimal(w http.ResponseWriter, r *http.Request) {
	var req OptimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if math.IsNaN(req.AnnualConsumption) || math.IsInf(req.AnnualConsumption, 0) {
		h.writeError(w, http.StatusBadRequest, "annual_consumption must be a finite number")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": sizing.RecommendedRange(req.AnnualConsumption),
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
