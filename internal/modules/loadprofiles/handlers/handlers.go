// Package handlers provides HTTP handlers for load profile lookups.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/greenmix/internal/modules/loadprofiles"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles load profile HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new load profile handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "loadprofiles").Logger(),
	}
}

// HandleListTypes handles GET /api/load-profiles
func (h *Handler) HandleListTypes(w http.ResponseWriter, r *http.Request) {
	types := loadprofiles.ProfileTypes()
	out := make([]map[string]string, 0, len(types))
	for _, pt := range types {
		out = append(out, map[string]string{
			"type":  string(pt),
			"label": pt.Label(),
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": out,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGetByPod handles GET /api/load-profiles/{pod}
func (h *Handler) HandleGetByPod(w http.ResponseWriter, r *http.Request) {
	pod := chi.URLParam(r, "pod")
	profileType := loadprofiles.ProfileTypeForPod(pod)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"pod_number":   pod,
			"profile_type": profileType,
			"label":        profileType.Label(),
			"points":       loadprofiles.Template(profileType),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGetSummary handles GET /api/load-profiles/{pod}/summary
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	pod := chi.URLParam(r, "pod")

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": loadprofiles.SummarizePod(pod),
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
