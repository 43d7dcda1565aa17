package seasons

import "fansite-app/internal/domain/catalog"

// SeasonWithStats is a season row plus the aggregates computed on every
// read. The counts and average are never persisted.
type SeasonWithStats struct {
	catalog.Season
	EpisodeCount int64   `json:"episode_count"`
	VideoCount   int64   `json:"video_count"`
	RatingAvg    float64 `json:"rating_avg"`
}

type UpdateSeasonRequest struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Year     *int    `json:"year"`
	Location *string `json:"location"`

	Description         *string `json:"description"`
	MainPosterURL       *string `json:"main_poster_url"`
	HorizontalPosterURL *string `json:"horizontal_poster_url"`
	ColorTheme          *string `json:"color_theme"`

	Type         *string `json:"type"`
	Genre        *string `json:"genre"`
	Directors    *string `json:"directors"`
	Writers      *string `json:"writers"`
	ViewRating   *string `json:"view_rating"`
	Streaming    *string `json:"streaming"`
	AirDateStart *string `json:"air_date_start"`
	AirDateEnd   *string `json:"air_date_end"`

	ProductionCost     *string `json:"production_cost"`
	TitleEN            *string `json:"title_en"`
	TitleCN            *string `json:"title_cn"`
	BroadcastTime      *string `json:"broadcast_time"`
	Planning           *string `json:"planning"`
	ProductionCompany  *string `json:"production_company"`
	Channel            *string `json:"channel"`
	AdditionalChannels *string `json:"additional_channels"`

	Links     []catalog.SocialLink        `json:"links"`
	Platforms []catalog.StreamingPlatform `json:"platforms"`
}

type AddRatingRequest struct {
	SeasonID      string  `json:"season_id" binding:"required"`
	EpisodeNumber *int    `json:"episode_number" binding:"required"`
	Rating        float64 `json:"rating" binding:"required"`
	AirDate       string  `json:"air_date"`
	Note          string  `json:"note"`
}
