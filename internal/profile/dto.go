package profile

import (
	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type UpdateCommand struct {
	Handle    *string
	Name      *string
	Bio       *string
	AvatarURL *string
}

// Output DTOs
type ProfileDTO struct {
	ID        uuid.UUID `json:"id"`
	Handle    string    `json:"handle"`
	Name      string    `json:"name,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}
