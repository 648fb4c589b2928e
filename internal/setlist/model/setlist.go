package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Song is an entry inside a setlist; the whole list is stored as one
// jsonb column, matching how the client edits it (whole-list saves).
type Song struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
}

type Setlist struct {
	bun.BaseModel `bun:"table:setlists"`

	ID     uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	UserID uuid.UUID `bun:",type:uuid,notnull"`
	Title  string    `bun:",notnull"`
	Songs  []Song    `bun:",type:jsonb"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
