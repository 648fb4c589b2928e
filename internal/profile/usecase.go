package profile

import (
	"context"

	"github.com/google/uuid"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*ProfileDTO, error)
	GetProfileByHandle(ctx context.Context, handle string) (*ProfileDTO, error)

	// Most recently created profiles first
	ListProfiles(ctx context.Context, limit int) ([]*ProfileDTO, error)

	// Update display fields; a handle change runs the same validation
	// and a fresh uniqueness check as signup
	UpdateProfile(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*ProfileDTO, error)
}
