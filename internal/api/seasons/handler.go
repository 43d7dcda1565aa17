package seasons

import (
	"log"
	"net/http"
	"strconv"

	"fansite-app/database"
	"fansite-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// GET /seasons
//
// Listing screens treat "nothing found" as a valid state, so a store
// failure degrades to an empty list instead of a 500.
func ListSeasons(c *gin.Context) {
	out, err := ListSeasonsWithStats(database.DB)
	if err != nil {
		log.Println("Error fetching seasons:", err)
		c.JSON(http.StatusOK, []SeasonWithStats{})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /seasons/:slug
func GetSeason(c *gin.Context) {
	season, err := GetSeasonBySlug(database.DB, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load season"})
		return
	}
	if season == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
		return
	}
	c.JSON(http.StatusOK, season)
}

// resolveSeason maps the :slug path param to the season row, answering 404
// itself when the slug is unknown.
func resolveSeason(c *gin.Context) (*catalog.Season, bool) {
	season, err := GetSeasonBySlug(database.DB, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load season"})
		return nil, false
	}
	if season == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
		return nil, false
	}
	return season, true
}

// GET /seasons/:slug/cast
func GetCast(c *gin.Context) {
	season, ok := resolveSeason(c)
	if !ok {
		return
	}
	rows, err := GetSeasonCast(database.DB, season.ID)
	if err != nil {
		log.Println("Error fetching season cast:", err)
	}
	c.JSON(http.StatusOK, rows)
}

// GET /seasons/:slug/videos?page=&limit=
func GetVideos(c *gin.Context) {
	season, ok := resolveSeason(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	rows, err := GetSeasonVideos(database.DB, season.ID, page, limit)
	if err != nil {
		log.Println("Error fetching season videos:", err)
	}
	c.JSON(http.StatusOK, rows)
}

// GET /seasons/:slug/ratings
func GetRatings(c *gin.Context) {
	season, ok := resolveSeason(c)
	if !ok {
		return
	}
	rows, err := GetSeasonRatings(database.DB, season.ID)
	if err != nil {
		log.Println("Error fetching season ratings:", err)
	}
	c.JSON(http.StatusOK, rows)
}

// GET /seasons/:slug/episodes
func GetEpisodes(c *gin.Context) {
	season, ok := resolveSeason(c)
	if !ok {
		return
	}
	rows, err := GetSeasonEpisodes(database.DB, season.ID)
	if err != nil {
		log.Println("Error fetching season episodes:", err)
	}
	c.JSON(http.StatusOK, rows)
}

// GET /seasons/:slug/images
func GetImages(c *gin.Context) {
	season, ok := resolveSeason(c)
	if !ok {
		return
	}
	rows, err := GetSeasonImages(database.DB, season.ID)
	if err != nil {
		log.Println("Error fetching season images:", err)
	}
	c.JSON(http.StatusOK, rows)
}

// GET /seasons/:slug/locations
func GetLocations(c *gin.Context) {
	season, ok := resolveSeason(c)
	if !ok {
		return
	}
	rows, err := GetSeasonLocations(database.DB, season.ID)
	if err != nil {
		log.Println("Error fetching season locations:", err)
	}
	c.JSON(http.StatusOK, rows)
}

// PUT /admin/seasons/:slug
func UpdateSeason(c *gin.Context) {
	var req UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	season, ok := resolveSeason(c)
	if !ok {
		return
	}

	updates := map[string]any{}
	setStr := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setStr("title", req.Title)
	setStr("subtitle", req.Subtitle)
	setStr("location", req.Location)
	setStr("description", req.Description)
	setStr("main_poster_url", req.MainPosterURL)
	setStr("horizontal_poster_url", req.HorizontalPosterURL)
	setStr("color_theme", req.ColorTheme)
	setStr("type", req.Type)
	setStr("genre", req.Genre)
	setStr("directors", req.Directors)
	setStr("writers", req.Writers)
	setStr("view_rating", req.ViewRating)
	setStr("streaming", req.Streaming)
	setStr("air_date_start", req.AirDateStart)
	setStr("air_date_end", req.AirDateEnd)
	setStr("production_cost", req.ProductionCost)
	setStr("title_en", req.TitleEN)
	setStr("title_cn", req.TitleCN)
	setStr("broadcast_time", req.BroadcastTime)
	setStr("planning", req.Planning)
	setStr("production_company", req.ProductionCompany)
	setStr("channel", req.Channel)
	setStr("additional_channels", req.AdditionalChannels)
	if req.Year != nil {
		updates["year"] = *req.Year
	}

	if err := database.DB.Model(season).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update season"})
		return
	}

	// JSON-serialized columns go through struct updates so the serializer runs
	if req.Links != nil || req.Platforms != nil {
		embedded := catalog.Season{Links: req.Links, Platforms: req.Platforms}
		cols := []string{}
		if req.Links != nil {
			cols = append(cols, "links")
		}
		if req.Platforms != nil {
			cols = append(cols, "platforms")
		}
		if err := database.DB.Model(season).Select(cols).Updates(embedded).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update season links"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /admin/ratings
func AddRating(c *gin.Context) {
	var req AddRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	rating := catalog.Rating{
		SeasonID:      req.SeasonID,
		EpisodeNumber: *req.EpisodeNumber,
		Rating:        req.Rating,
		AirDate:       req.AirDate,
		Note:          req.Note,
	}
	if err := database.DB.Create(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add rating"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": rating.ID})
}

// DELETE /admin/ratings/:id
func DeleteRating(c *gin.Context) {
	if err := database.DB.Delete(&catalog.Rating{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
