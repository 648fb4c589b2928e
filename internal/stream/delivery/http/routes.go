package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *StreamHandlers) MapRoutes(r chi.Router) {
	r.Route("/streams", func(r chi.Router) {
		r.Get("/live", h.ListLive())
		r.Get("/{id}", h.Get())
	})
}
