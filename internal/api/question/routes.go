package question

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers question routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/questions", h.Ask)
	r.Get("/questions", h.List)
	r.Get("/models", h.ListModels)
}
