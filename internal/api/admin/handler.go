package admin

import (
	"log"
	"net/http"

	"fansite-app/database"
	"fansite-app/internal/domain/cast"
	"fansite-app/internal/domain/mascots"
	"fansite-app/internal/domain/videos"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RatingPoint is one chart point: a rating joined with the minimal season
// fields the chart colors by.
type RatingPoint struct {
	EpisodeNumber int     `json:"episode_number"`
	Rating        float64 `json:"rating"`
	SeasonID      string  `json:"season_id"`
	SeasonSlug    string  `json:"season_slug"`
	SeasonTitle   string  `json:"season_title"`
	ColorTheme    string  `json:"color_theme"`
}

type DashboardStats struct {
	VideoCount   int64         `json:"video_count"`
	CastCount    int64         `json:"cast_count"`
	GalleryCount int64         `json:"gallery_count"`
	Ratings      []RatingPoint `json:"ratings"`
}

// GET /admin/stats
func GetDashboardStats(c *gin.Context) {
	var stats DashboardStats

	if err := database.DB.Model(&videos.SeasonVideo{}).Count(&stats.VideoCount).Error; err != nil {
		log.Println("Error fetching video count:", err)
	}
	if err := database.DB.Model(&cast.CastMember{}).Count(&stats.CastCount).Error; err != nil {
		log.Println("Error fetching cast count:", err)
	}
	if err := database.DB.Model(&mascots.MascotGalleryImage{}).Count(&stats.GalleryCount).Error; err != nil {
		log.Println("Error fetching gallery count:", err)
	}

	points, err := ratingPoints(database.DB)
	if err != nil {
		log.Println("Error fetching ratings:", err)
		points = []RatingPoint{}
	}
	stats.Ratings = points

	c.JSON(http.StatusOK, stats)
}

func ratingPoints(db *gorm.DB) ([]RatingPoint, error) {
	var rows []RatingPoint
	err := db.Table("ratings").
		Select("ratings.episode_number, ratings.rating, seasons.id AS season_id, seasons.slug AS season_slug, seasons.title AS season_title, seasons.color_theme AS color_theme").
		Joins("LEFT JOIN seasons ON ratings.season_id = seasons.id").
		Order("ratings.season_id ASC").
		Order("ratings.episode_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// drop orphaned ratings whose season no longer exists
	valid := rows[:0]
	for _, r := range rows {
		if r.SeasonID != "" {
			valid = append(valid, r)
		}
	}
	return valid, nil
}
