// Package handlers provides HTTP handlers for portfolio allocation.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/modules/allocation"
	"github.com/rs/zerolog"
)

// Handler handles allocation HTTP requests
type Handler struct {
	allocator *allocation.Allocator
	log       zerolog.Logger
}

// NewHandler creates a new allocation handler
func NewHandler(allocator *allocation.Allocator, log zerolog.Logger) *Handler {
	return &Handler{
		allocator: allocator,
		log:       log.With().Str("handler", "allocation").Logger(),
	}
}

// HandleAllocate handles POST /api/allocation
// Query parameter trace=true adds the intermediate percentage splits.
func (h *Handler) HandleAllocate(w http.ResponseWriter, r *http.Request) {
	var profile domain.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := profile.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trace := h.allocator.Trace(profile)
	result := allocation.Distribute(trace.Final, profile.Budget)
	withinBounds := h.allocator.WithinBounds(trace.Final)
	if !withinBounds {
		h.log.Warn().
			Str("profile", profile.Key()).
			Int("solar", trace.Final.Solar).
			Int("battery", trace.Final.Battery).
			Int("wind", trace.Final.Wind).
			Msg("Final split outside per-asset bounds")
	}

	data := map[string]interface{}{
		"allocation":    result,
		"within_bounds": withinBounds,
	}
	if r.URL.Query().Get("trace") == "true" {
		data["trace"] = trace
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": data,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGetRules handles GET /api/allocation/rules
func (h *Handler) HandleGetRules(w http.ResponseWriter, r *http.Request) {
	rules := h.allocator.Rules()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"baseline":      rules.Baseline,
			"objectives":    rules.Objectives,
			"risk_appetite": rules.RiskAppetite,
			"bounds": map[string]interface{}{
				"solar":   rules.Solar,
				"battery": rules.Battery,
				"wind":    rules.Wind,
			},
		},
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
