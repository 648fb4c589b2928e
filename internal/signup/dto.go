package signup

import (
	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type Command struct {
	Handle   string
	Password string
	Email    string // optional; synthetic email derived when empty
	Name     string // optional display name
}

// Output DTOs
type Result struct {
	UserID uuid.UUID
	// EmailUsed is the email the client must sign in with right after
	// signup — the supplied one, or the synthetic fallback.
	EmailUsed string
	Handle    string
}
