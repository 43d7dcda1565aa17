package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is a per-episode viewership rating. It references the episode by
// number, not by id, so ratings can exist before (or without) the episode
// row itself.
type Rating struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	SeasonID string `gorm:"type:uuid;not null;index" json:"season_id"`

	EpisodeNumber int     `gorm:"not null" json:"episode_number"`
	Rating        float64 `gorm:"not null" json:"rating"`
	AirDate       string  `gorm:"column:air_date" json:"air_date"`
	Note          string  `json:"note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
