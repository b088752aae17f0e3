// Package handlers provides HTTP handlers for scenario metrics and comparisons.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/modules/scenarios"
	"github.com/rs/zerolog"
)

// Handler handles scenario HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new scenarios handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "scenarios").Logger(),
	}
}

// MetricsRequest represents a percentage split to score
type MetricsRequest struct {
	Solar   float64 `json:"solar"`
	Battery float64 `json:"battery"`
	Wind    float64 `json:"wind"`
}

// AlternativesRequest represents a request for the comparison scenarios
type AlternativesRequest struct {
	Allocation domain.PortfolioAllocation `json:"allocation"`
	Budget     float64                    `json:"budget"`
}

// HandleMetrics handles POST /api/scenarios/metrics
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	var req MetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": scenarios.CalculateScenarioMetrics(req.Solar, req.Battery, req.Wind),
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleAlternatives handles POST /api/scenarios/alternatives
// The optional best query parameter (return, autonomy, co2) names the
// criterion used to pick a recommended scenario.
func (h *Handler) HandleAlternatives(w http.ResponseWriter, r *http.Request) {
	var req AlternativesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	list := scenarios.GenerateAlternativeScenarios(req.Allocation, req.Budget)
	data := map[string]interface{}{
		"scenarios": list,
	}

	if c := r.URL.Query().Get("best"); c != "" {
		criterion, err := scenarios.ParseCriterion(c)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if best, ok := scenarios.BestScenario(list, criterion); ok {
			data["best"] = best
		}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": data,
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
