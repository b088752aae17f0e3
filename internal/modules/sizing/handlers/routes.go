package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all sizing routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/investment/optimal", h.HandleOptimal)
}
