package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all load profile routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/load-profiles", func(r chi.Router) {
		r.Get("/", h.HandleListTypes)
		r.Get("/{pod}", h.HandleGetByPod)
		r.Get("/{pod}/summary", h.HandleGetSummary)
	})
}
