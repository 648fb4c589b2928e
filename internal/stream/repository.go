package stream

import (
	"context"

	"github.com/google/uuid"

	models "github.com/gitlancederecho/sona-app/internal/stream/model"
)

type StreamRepository interface {
	// Live streams, most recently started first
	ListLive(ctx context.Context) ([]*models.Stream, error)
	GetStreamByID(ctx context.Context, id uuid.UUID) (*models.Stream, error)
}
