package videos

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeHighlight = "highlight"
	TypeFull      = "full"
	TypeTeaser    = "teaser"
	TypeLive      = "live"
	TypeShorts    = "shorts"
	TypeFancam    = "fancam"
	TypeMaking    = "making"
	TypeInterview = "interview"
)

// SeasonVideo is a YouTube video attached to a season, optionally linked to
// one episode. Uniqueness of (season_id, youtube_url) is enforced by a
// check-then-insert in the handlers, not by a DB constraint.
type SeasonVideo struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	SeasonID string `gorm:"type:uuid;not null;index" json:"season_id"`

	// nil means "not linked to any episode", a common and valid state
	EpisodeID *string `gorm:"type:uuid;index" json:"episode_id,omitempty"`

	Title        string     `gorm:"not null" json:"title"`
	YoutubeURL   string     `gorm:"column:youtube_url;not null" json:"youtube_url"`
	ThumbnailURL string     `gorm:"column:thumbnail_url" json:"thumbnail_url,omitempty"`
	Type         string     `gorm:"not null;default:'highlight'" json:"type"`
	ViewCount    string     `gorm:"column:view_count" json:"view_count,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *SeasonVideo) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
