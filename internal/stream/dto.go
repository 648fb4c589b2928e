package stream

import (
	"time"

	"github.com/google/uuid"

	models "github.com/gitlancederecho/sona-app/internal/stream/model"
)

// Output DTOs
type StreamDTO struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Title       string        `json:"title"`
	PlaybackURL *string       `json:"playback_url"`
	Status      models.Status `json:"status"`
	StartedAt   *time.Time    `json:"started_at,omitempty"`
	EndedAt     *time.Time    `json:"ended_at,omitempty"`
}
