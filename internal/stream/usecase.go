package stream

import (
	"context"

	"github.com/google/uuid"
)

type StreamUsecase interface {
	ListLive(ctx context.Context) ([]*StreamDTO, error)

	// Get returns (nil, nil) for an unknown id; the watch screen
	// treats a missing stream as "ended", not as an error.
	Get(ctx context.Context, id uuid.UUID) (*StreamDTO, error)
}
