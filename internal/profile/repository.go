package profile

import (
	"context"

	"github.com/google/uuid"

	models "github.com/gitlancederecho/sona-app/internal/profile/model"
)

type ProfileRepository interface {
	// HandleExists is the advisory fast-path check; the unique
	// constraint on handle is the authoritative guard.
	HandleExists(ctx context.Context, handle string) (bool, error)

	// UpsertProfile inserts or updates the row keyed by uid, so a
	// retried signup converges instead of failing on the second pass.
	UpsertProfile(ctx context.Context, profile *models.Profile) error

	GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error)
	ListProfiles(ctx context.Context, limit int) ([]*models.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, changes UpdateCommand) (*models.Profile, error)
}
