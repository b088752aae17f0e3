package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all community routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/community", func(r chi.Router) {
		r.Get("/", h.HandleGetOverview)
		r.Get("/contribution", h.HandleGetContribution)
	})
}
