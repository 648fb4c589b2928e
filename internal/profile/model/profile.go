package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Profile struct {
	bun.BaseModel `bun:"table:users"`

	// ID is the identity provider's uid; the profile row never mints
	// its own key.
	ID uuid.UUID `bun:",pk,type:uuid"`

	// Handle = unique public username, stored lowercase
	Handle string `bun:",unique,notnull"`

	// Name = display name (can be changed freely)
	Name string `bun:",nullzero"`

	Bio       string `bun:",nullzero"`
	AvatarURL string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
