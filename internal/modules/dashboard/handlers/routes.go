package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all dashboard routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", h.HandleGetDefault)
		r.Get("/plan", h.HandleGetDefaultPlan)
		r.Post("/sell-quote", h.HandleSellQuote)
		r.Get("/{sessionID}", h.HandleGetForSession)
		r.Get("/{sessionID}/plan", h.HandleGetPlanForSession)
	})
}
