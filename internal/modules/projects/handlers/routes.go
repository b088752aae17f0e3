package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all project routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Get("/{id}", h.HandleGet)
	})
}
