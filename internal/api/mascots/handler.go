package mascots

import (
	"errors"
	"log"
	"net/http"

	"fansite-app/database"
	"fansite-app/internal/domain/mascots"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /mascots/:slug
func GetMascot(c *gin.Context) {
	var m mascots.Mascot
	err := database.DB.Preload("SeasonMascots").First(&m, "slug = ?", c.Param("slug")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mascot not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load mascot"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// GET /season-mascots
func ListSeasonMascots(c *gin.Context) {
	var rows []mascots.SeasonMascot
	if err := database.DB.Preload("Mascot").Find(&rows).Error; err != nil {
		log.Println("Error fetching season mascots:", err)
		c.JSON(http.StatusOK, []mascots.SeasonMascot{})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /mascots/:slug/gallery
func GetGallery(c *gin.Context) {
	var m mascots.Mascot
	if err := database.DB.Select("id").First(&m, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusOK, []mascots.MascotGalleryImage{})
		return
	}

	var rows []mascots.MascotGalleryImage
	err := database.DB.Where("mascot_id = ?", m.ID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		log.Println("Error fetching mascot gallery:", err)
	}
	c.JSON(http.StatusOK, rows)
}

type SeasonMascotRequest struct {
	SeasonID    string `json:"season_id"`
	MascotSlug  string `json:"mascot_slug"`
	Status      string `json:"status"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// PUT /admin/season-mascots
//
// Upsert keyed on (season_id, mascot_id): a second save for the same pair
// overwrites status, description and image instead of failing.
func UpsertSeasonMascot(c *gin.Context) {
	var req SeasonMascotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SeasonID == "" || req.MascotSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	var m mascots.Mascot
	if err := database.DB.Select("id").First(&m, "slug = ?", req.MascotSlug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mascot not found"})
		return
	}

	row := mascots.SeasonMascot{
		SeasonID:    req.SeasonID,
		MascotID:    m.ID,
		Status:      req.Status,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "season_id"}, {Name: "mascot_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "description", "image_url", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save season mascot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type GalleryImageRequest struct {
	MascotSlug string `json:"mascot_slug"`
	ImageURL   string `json:"image_url"`
}

// POST /admin/mascot-gallery
func AddGalleryImage(c *gin.Context) {
	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}
	if req.MascotSlug == "" {
		req.MascotSlug = "torong"
	}

	var m mascots.Mascot
	if err := database.DB.Select("id").First(&m, "slug = ?", req.MascotSlug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mascot not found"})
		return
	}

	img := mascots.MascotGalleryImage{MascotID: m.ID, ImageURL: req.ImageURL}
	if err := database.DB.Create(&img).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": img.ID})
}

// DELETE /admin/mascot-gallery/:id
func DeleteGalleryImage(c *gin.Context) {
	if err := database.DB.Delete(&mascots.MascotGalleryImage{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
