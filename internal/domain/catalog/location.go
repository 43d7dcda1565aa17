package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Location struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	SeasonID string `gorm:"type:uuid;not null;index" json:"season_id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Address     string `json:"address"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Mappable reports whether the location can be placed on a map.
func (l *Location) Mappable() bool {
	return l.Latitude != nil && l.Longitude != nil
}
