package setlist

import (
	"time"

	"github.com/google/uuid"

	models "github.com/gitlancederecho/sona-app/internal/setlist/model"
)

// Input commands
type CreateCommand struct {
	Title string
	Songs []models.Song
}

type UpdateCommand struct {
	Title *string
	Songs *[]models.Song
}

// Output DTOs
type SetlistDTO struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	Title     string        `json:"title"`
	Songs     []models.Song `json:"songs"`
	CreatedAt time.Time     `json:"created_at"`
}
