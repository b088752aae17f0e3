// Package handlers provides HTTP handlers for the portfolio dashboard.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/modules/dashboard"
	"github.com/aristath/greenmix/internal/modules/sessions"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	service *dashboard.Service
	log     zerolog.Logger
}

// NewHandler creates a new dashboard handler
func NewHandler(service *dashboard.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "dashboard").Logger(),
	}
}

// SellQuoteRequest represents a request to price a partial sale
type SellQuoteRequest struct {
	CurrentValue float64 `json:"current_value"`
	Percentage   float64 `json:"percentage"`
}

// HandleGetDefault handles GET /api/dashboard
func (h *Handler) HandleGetDefault(w http.ResponseWriter, r *http.Request) {
	h.writeData(w, h.service.Default())
}

// HandleGetForSession handles GET /api/dashboard/{sessionID}
func (h *Handler) HandleGetForSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessions.ParseID(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	d, err := h.service.ForSession(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeData(w, d)
}

// HandleGetDefaultPlan handles GET /api/dashboard/plan?type=&months=
func (h *Handler) HandleGetDefaultPlan(w http.ResponseWriter, r *http.Request) {
	planType, months, err := parsePlanQuery(r)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	plan, err := h.service.DefaultPlan(planType, months)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeData(w, plan)
}

// HandleGetPlanForSession handles GET /api/dashboard/{sessionID}/plan?type=&months=
func (h *Handler) HandleGetPlanForSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessions.ParseID(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	planType, months, err := parsePlanQuery(r)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	plan, err := h.service.PlanForSession(r.Context(), id, planType, months)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeData(w, plan)
}

func parsePlanQuery(r *http.Request) (dashboard.PlanType, int, error) {
	planType, err := dashboard.ParsePlanType(r.URL.Query().Get("type"))
	if err != nil {
		return "", 0, err
	}

	months := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		months, err = strconv.Atoi(raw)
		if err != nil || months < 0 {
			return "", 0, domain.NewValidationError("months", fmt.Sprintf("invalid plan term %q", raw))
		}
	}
	return planType, months, nil
}

// HandleSellQuote handles POST /api/dashboard/sell-quote
func (h *Handler) HandleSellQuote(w http.ResponseWriter, r *http.Request) {
	var req SellQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount, err := dashboard.SellQuote(req.CurrentValue, req.Percentage)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeData(w, map[string]interface{}{
		"current_value": req.CurrentValue,
		"percentage":    req.Percentage,
		"amount":        amount,
	})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		h.writeError(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error().Err(err).Msg("Dashboard request failed")
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) writeData(w http.ResponseWriter, data interface{}) {
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
