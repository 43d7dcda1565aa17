package locations

import (
	"log"
	"net/http"

	"fansite-app/database"
	"fansite-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type MappableLocation struct {
	catalog.Location
	SeasonSlug  string `json:"season_slug,omitempty"`
	SeasonColor string `json:"season_color,omitempty"`
}

// GET /locations
//
// Only mappable locations (both coordinates present), with the owning
// season's slug and theme color for the map pins.
func ListMappable(c *gin.Context) {
	var rows []catalog.Location
	err := database.DB.
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("season_id").
		Find(&rows).Error
	if err != nil {
		log.Println("Error fetching locations:", err)
		c.JSON(http.StatusOK, []MappableLocation{})
		return
	}

	seasonIDs := make([]string, 0, len(rows))
	seen := map[string]bool{}
	for _, l := range rows {
		if !seen[l.SeasonID] {
			seen[l.SeasonID] = true
			seasonIDs = append(seasonIDs, l.SeasonID)
		}
	}

	seasonsByID := map[string]catalog.Season{}
	if len(seasonIDs) > 0 {
		var seasonRows []catalog.Season
		if err := database.DB.Select("id, slug, color_theme").Where("id IN ?", seasonIDs).Find(&seasonRows).Error; err == nil {
			for _, s := range seasonRows {
				seasonsByID[s.ID] = s
			}
		}
	}

	out := make([]MappableLocation, 0, len(rows))
	for _, l := range rows {
		s := seasonsByID[l.SeasonID]
		out = append(out, MappableLocation{Location: l, SeasonSlug: s.Slug, SeasonColor: s.ColorTheme})
	}
	c.JSON(http.StatusOK, out)
}

type LocationRequest struct {
	ID          string   `json:"id"`
	SeasonID    string   `json:"season_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// POST /admin/locations
func UpsertLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SeasonID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	loc := catalog.Location{
		ID:          req.ID,
		SeasonID:    req.SeasonID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&loc).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save location"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": loc.ID})
}

// DELETE /admin/locations/:id
func DeleteLocation(c *gin.Context) {
	if err := database.DB.Delete(&catalog.Location{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
