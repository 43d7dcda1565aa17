package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialLink is one entry of a season's flexible link list, stored embedded
// on the season row. The type key matches SocialPlatform.Key by string, it
// is not a real foreign key.
type SocialLink struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// StreamingPlatform is one streaming entry embedded on the season row.
type StreamingPlatform struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
	URL     string `json:"url,omitempty"`
}

type Season struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Slug string `gorm:"not null;uniqueIndex:idx_seasons_slug" json:"slug"`

	Title    string `gorm:"not null" json:"title"`
	Subtitle string `json:"subtitle"`
	Year     int    `gorm:"index" json:"year"`
	Location string `json:"location"`

	Description         string `json:"description"`
	MainPosterURL       string `gorm:"column:main_poster_url" json:"main_poster_url"`
	HorizontalPosterURL string `gorm:"column:horizontal_poster_url" json:"horizontal_poster_url,omitempty"`
	ColorTheme          string `gorm:"column:color_theme" json:"color_theme"`

	Type         string `gorm:"default:'regular'" json:"type"`
	Genre        string `json:"genre,omitempty"`
	Directors    string `json:"directors,omitempty"`
	Writers      string `json:"writers,omitempty"`
	ViewRating   string `gorm:"column:view_rating" json:"view_rating,omitempty"`
	Streaming    string `json:"streaming,omitempty"`
	AirDateStart string `gorm:"column:air_date_start" json:"air_date_start"`
	AirDateEnd   string `gorm:"column:air_date_end" json:"air_date_end"`

	ProductionCost     string `gorm:"column:production_cost" json:"production_cost,omitempty"`
	TitleEN            string `gorm:"column:title_en" json:"title_en,omitempty"`
	TitleCN            string `gorm:"column:title_cn" json:"title_cn,omitempty"`
	BroadcastTime      string `gorm:"column:broadcast_time" json:"broadcast_time,omitempty"`
	Planning           string `json:"planning,omitempty"`
	ProductionCompany  string `gorm:"column:production_company" json:"production_company,omitempty"`
	Channel            string `json:"channel,omitempty"`
	AdditionalChannels string `gorm:"column:additional_channels" json:"additional_channels,omitempty"`

	// Denormalized on purpose: read as a whole with the season, edited as a
	// whole from the season form.
	Links     []SocialLink        `gorm:"serializer:json" json:"links,omitempty"`
	Platforms []StreamingPlatform `gorm:"serializer:json" json:"platforms,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Season) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
