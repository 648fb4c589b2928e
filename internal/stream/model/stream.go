package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Status string

const (
	StatusLive      Status = "live"
	StatusEnded     Status = "ended"
	StatusScheduled Status = "scheduled"
)

type Stream struct {
	bun.BaseModel `bun:"table:streams"`

	ID     uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	UserID uuid.UUID `bun:",type:uuid,notnull"`
	Title  string    `bun:",notnull"`

	// PlaybackURL is nil until the media pipeline publishes the stream
	PlaybackURL *string `bun:",nullzero"`
	Status      Status  `bun:",notnull,default:'scheduled'"`

	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	StartedAt *time.Time `bun:",nullzero"`
	EndedAt   *time.Time `bun:",nullzero"`
}
