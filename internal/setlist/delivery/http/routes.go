package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *SetlistHandlers) MapRoutes(r chi.Router) {
	r.Route("/setlists", func(r chi.Router) {
		r.Get("/", h.ListForUser())
		r.Post("/", h.Create())
		r.Get("/{id}", h.Get())
		r.Patch("/{id}", h.Update())
		r.Delete("/{id}", h.Delete())
	})
}
