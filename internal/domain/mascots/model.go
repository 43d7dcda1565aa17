package mascots

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Season-mascot status values.
const (
	StatusEscaped = "Escaped"
	StatusCaught  = "Caught"
	StatusUnknown = "Unknown"
)

type Mascot struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"not null;uniqueIndex:idx_mascots_slug" json:"slug"`

	SeasonMascots []SeasonMascot `gorm:"foreignKey:MascotID" json:"season_mascots,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Mascot) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// SeasonMascot tracks a mascot's status within one season. Unique per
// (season, mascot); writes go through an upsert on that pair.
type SeasonMascot struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"-"`
	SeasonID string `gorm:"type:uuid;not null;uniqueIndex:idx_season_mascots_pair,priority:1" json:"season_id"`
	MascotID string `gorm:"type:uuid;not null;uniqueIndex:idx_season_mascots_pair,priority:2" json:"mascot_id"`

	Status      string `gorm:"default:'Unknown'" json:"status"`
	Description string `json:"description"`
	ImageURL    string `gorm:"column:image_url" json:"image_url,omitempty"`

	Mascot *Mascot `gorm:"foreignKey:MascotID" json:"mascot,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (sm *SeasonMascot) BeforeCreate(tx *gorm.DB) error {
	if sm.ID == "" {
		sm.ID = uuid.NewString()
	}
	return nil
}

type MascotGalleryImage struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	MascotID string `gorm:"type:uuid;not null;index" json:"mascot_id"`

	ImageURL string `gorm:"column:image_url;not null" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *MascotGalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

func (MascotGalleryImage) TableName() string { return "mascot_gallery" }
