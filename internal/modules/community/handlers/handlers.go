// Package handlers provides HTTP handlers for the investor community.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/modules/community"
	"github.com/rs/zerolog"
)

// Handler handles community HTTP requests
type Handler struct {
	overview *community.Overview
	log      zerolog.Logger
}

// NewHandler creates a new community handler
func NewHandler(overview *community.Overview, log zerolog.Logger) *Handler {
	return &Handler{
		overview: overview,
		log:      log.With().Str("handler", "community").Logger(),
	}
}

// HandleGetOverview handles GET /api/community
func (h *Handler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	h.writeData(w, h.overview)
}

// HandleGetContribution handles GET /api/community/contribution?investment=
func (h *Handler) HandleGetContribution(w http.ResponseWriter, r *http.Request) {
	investment, err := strconv.ParseFloat(r.URL.Query().Get("investment"), 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid investment")
		return
	}

	c, err := h.overview.Contribution(investment)
	if err != nil {
		if domain.IsValidation(err) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("Failed to compute contribution")
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeData(w, c)
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
