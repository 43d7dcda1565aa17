package episodes

import (
	"net/http"

	"fansite-app/database"
	"fansite-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type EpisodeRequest struct {
	ID            string  `json:"id"`
	SeasonID      string  `json:"season_id"`
	EpisodeNumber int     `json:"episode_number"`
	Title         string  `json:"title"`
	AirDate       string  `json:"air_date"`
	Rating        float64 `json:"rating"`
	Description   string  `json:"description"`
}

// POST /admin/episodes
//
// Full-record upsert: a request with an id overwrites that row, without one
// it creates a new episode.
func UpsertEpisode(c *gin.Context) {
	var req EpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SeasonID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing season id"})
		return
	}

	ep := catalog.Episode{
		ID:            req.ID,
		SeasonID:      req.SeasonID,
		EpisodeNumber: req.EpisodeNumber,
		Title:         req.Title,
		AirDate:       req.AirDate,
		Rating:        req.Rating,
		Description:   req.Description,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&ep).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save episode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": ep.ID})
}

// DELETE /admin/episodes/:id
func DeleteEpisode(c *gin.Context) {
	if err := database.DB.Delete(&catalog.Episode{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete episode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type GameRequest struct {
	ID          string `json:"id"`
	EpisodeID   string `json:"episode_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Winner      string `json:"winner"`
	Result      string `json:"result"`
}

// POST /admin/games
func UpsertGame(c *gin.Context) {
	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EpisodeID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	game := catalog.Game{
		ID:          req.ID,
		EpisodeID:   req.EpisodeID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Winner:      req.Winner,
		Result:      req.Result,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&game).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save game"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": game.ID})
}

// DELETE /admin/games/:id
func DeleteGame(c *gin.Context) {
	if err := database.DB.Delete(&catalog.Game{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
