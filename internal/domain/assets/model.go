package assets

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeasonImage is a gallery photo attached to a season.
type SeasonImage struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	SeasonID string `gorm:"type:uuid;not null;index" json:"season_id"`

	URL       string `gorm:"not null" json:"url"`
	Caption   string `json:"caption,omitempty"`
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *SeasonImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// SocialPlatform is the global catalog of selectable link types. Season
// social links reference it by Key, as a plain string match.
type SocialPlatform struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Key       string `gorm:"not null;uniqueIndex:idx_social_platforms_key" json:"key"`
	Label     string `gorm:"not null" json:"label"`
	IconURL   string `gorm:"column:icon_url" json:"icon_url,omitempty"`
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *SocialPlatform) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
