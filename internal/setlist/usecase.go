package setlist

import (
	"context"

	"github.com/google/uuid"
)

type SetlistUsecase interface {
	// Newest setlists first
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*SetlistDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*SetlistDTO, error)

	Create(ctx context.Context, userID uuid.UUID, cmd CreateCommand) (*SetlistDTO, error)

	// Update and Delete reject callers that do not own the setlist
	Update(ctx context.Context, userID, id uuid.UUID, cmd UpdateCommand) (*SetlistDTO, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
