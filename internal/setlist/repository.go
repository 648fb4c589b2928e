package setlist

import (
	"context"

	"github.com/google/uuid"

	models "github.com/gitlancederecho/sona-app/internal/setlist/model"
)

type SetlistRepository interface {
	CreateSetlist(ctx context.Context, setlist *models.Setlist) error
	GetSetlistByID(ctx context.Context, id uuid.UUID) (*models.Setlist, error)
	ListSetlistsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Setlist, error)
	UpdateSetlist(ctx context.Context, setlist *models.Setlist) error
	DeleteSetlist(ctx context.Context, id uuid.UUID) error
}
