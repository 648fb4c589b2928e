package http

import (
	"github.com/go-chi/chi/v5"
)

// MapRoutes registers the signup endpoint at the same path the mobile
// client already calls. Method dispatch (POST/OPTIONS/405) happens in
// the handler so the preflight and the error contract share one code
// path.
func (h *SignupHandlers) MapRoutes(r chi.Router) {
	r.HandleFunc("/functions/username-signup", h.Signup())
}
