package catalog

import (
	"time"

	"fansite-app/internal/domain/videos"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Episode struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	SeasonID string `gorm:"type:uuid;not null;index:idx_episodes_season_number,priority:1" json:"season_id"`

	EpisodeNumber int     `gorm:"not null;index:idx_episodes_season_number,priority:2" json:"episode_number"`
	Title         string  `json:"title"`
	AirDate       string  `gorm:"column:air_date" json:"air_date"`
	Rating        float64 `json:"rating"`
	Description   string  `json:"description"`

	Games  []Game               `gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE;" json:"games,omitempty"`
	Videos []videos.SeasonVideo `gorm:"foreignKey:EpisodeID" json:"videos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Episode) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type Game struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	EpisodeID string `gorm:"type:uuid;not null;index" json:"episode_id"`

	Name        string `gorm:"not null" json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Winner      string `json:"winner"`
	Result      string `json:"result"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
