package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *ProfileHandlers) MapRoutes(r chi.Router) {
	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", h.List())
		r.Get("/handle/{handle}", h.GetByHandle())
		r.Get("/{id}", h.GetByID())
		r.Patch("/{id}", h.Update())
	})
}
