package seasons

import (
	"errors"
	"math"

	"fansite-app/internal/domain/assets"
	"fansite-app/internal/domain/cast"
	"fansite-app/internal/domain/catalog"
	"fansite-app/internal/domain/videos"

	"gorm.io/gorm"
)

type seasonCount struct {
	SeasonID string
	N        int64
}

func countBySeason(db *gorm.DB, table string) (map[string]int64, error) {
	var rows []seasonCount
	err := db.Table(table).
		Select("season_id, COUNT(*) as n").
		Group("season_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.SeasonID] = r.N
	}
	return out, nil
}

type seasonAvg struct {
	SeasonID string
	Avg      float64
}

func ratingAvgBySeason(db *gorm.DB) (map[string]float64, error) {
	var rows []seasonAvg
	err := db.Table("ratings").
		Select("season_id, AVG(rating) as avg").
		Group("season_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		// one decimal place, matching the public display
		out[r.SeasonID] = math.Round(r.Avg*10) / 10
	}
	return out, nil
}

// ListSeasonsWithStats returns every season, newest year first, with the
// episode count, video count and rating average recomputed from the child
// tables.
func ListSeasonsWithStats(db *gorm.DB) ([]SeasonWithStats, error) {
	var all []catalog.Season
	if err := db.Order("year DESC").Find(&all).Error; err != nil {
		return nil, err
	}

	episodeCounts, err := countBySeason(db, "episodes")
	if err != nil {
		return nil, err
	}
	videoCounts, err := countBySeason(db, "season_videos")
	if err != nil {
		return nil, err
	}
	ratingAvgs, err := ratingAvgBySeason(db)
	if err != nil {
		return nil, err
	}

	out := make([]SeasonWithStats, 0, len(all))
	for _, s := range all {
		out = append(out, SeasonWithStats{
			Season:       s,
			EpisodeCount: episodeCounts[s.ID],
			VideoCount:   videoCounts[s.ID],
			RatingAvg:    ratingAvgs[s.ID],
		})
	}
	return out, nil
}

// GetSeasonBySlug returns nil, nil when no season has the slug. Only real
// store failures come back as errors.
func GetSeasonBySlug(db *gorm.DB, slug string) (*catalog.Season, error) {
	var s catalog.Season
	err := db.First(&s, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func GetSeasonCast(db *gorm.DB, seasonID string) ([]cast.SeasonCast, error) {
	var rows []cast.SeasonCast
	err := db.Preload("Cast").
		Where("season_id = ?", seasonID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func GetSeasonVideos(db *gorm.DB, seasonID string, page, limit int) ([]videos.SeasonVideo, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	var rows []videos.SeasonVideo
	err := db.Where("season_id = ?", seasonID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func GetSeasonRatings(db *gorm.DB, seasonID string) ([]catalog.Rating, error) {
	var rows []catalog.Rating
	err := db.Where("season_id = ?", seasonID).
		Order("episode_number ASC").
		Find(&rows).Error
	return rows, err
}

// GetSeasonEpisodes eager-loads each episode's games and linked highlight
// videos.
func GetSeasonEpisodes(db *gorm.DB, seasonID string) ([]catalog.Episode, error) {
	var rows []catalog.Episode
	err := db.Preload("Games").
		Preload("Videos").
		Where("season_id = ?", seasonID).
		Order("episode_number ASC").
		Find(&rows).Error
	return rows, err
}

func GetSeasonImages(db *gorm.DB, seasonID string) ([]assets.SeasonImage, error) {
	var rows []assets.SeasonImage
	err := db.Where("season_id = ?", seasonID).
		Order("sort_order ASC").
		Find(&rows).Error
	return rows, err
}

func GetSeasonLocations(db *gorm.DB, seasonID string) ([]catalog.Location, error) {
	var rows []catalog.Location
	err := db.Where("season_id = ?", seasonID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
