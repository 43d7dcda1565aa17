package assets

import (
	"log"
	"net/http"
	"strings"

	"fansite-app/database"
	"fansite-app/internal/domain/assets"
	"fansite-app/internal/infra/storage"

	"github.com/gin-gonic/gin"
)

// Store holds the blob storage the upload endpoint writes to. Wired in
// main.
var Store *storage.Disk

// GET /platforms
func ListPlatforms(c *gin.Context) {
	var rows []assets.SocialPlatform
	err := database.DB.
		Order("sort_order ASC").
		Order("label ASC").
		Find(&rows).Error
	if err != nil {
		log.Println("Error fetching social platforms:", err)
		c.JSON(http.StatusOK, []assets.SocialPlatform{})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type PlatformRequest struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	IconURL string `json:"icon_url"`
}

// POST /admin/platforms
func AddPlatform(c *gin.Context) {
	var req PlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" || req.Label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Key and Label are required"})
		return
	}

	p := assets.SocialPlatform{Key: req.Key, Label: req.Label, IconURL: req.IconURL}
	if err := database.DB.Create(&p).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			c.JSON(http.StatusConflict, gin.H{"error": "Platform key already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add platform"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": p.ID})
}

// DELETE /admin/platforms/:id
func DeletePlatform(c *gin.Context) {
	if err := database.DB.Delete(&assets.SocialPlatform{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete platform"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type SeasonImageRequest struct {
	SeasonID string `json:"season_id"`
	URL      string `json:"url"`
	Caption  string `json:"caption"`
}

// POST /admin/images
func AddSeasonImage(c *gin.Context) {
	var req SeasonImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SeasonID == "" || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	img := assets.SeasonImage{SeasonID: req.SeasonID, URL: req.URL, Caption: req.Caption}
	if err := database.DB.Create(&img).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": img.ID})
}

// DELETE /admin/images/:id
func DeleteSeasonImage(c *gin.Context) {
	if err := database.DB.Delete(&assets.SeasonImage{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /admin/upload
//
// Multipart file in, public URL out. The stored name is generated, never
// the client's.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	defer src.Close()

	url, err := Store.Save(file.Filename, src)
	if err != nil {
		log.Println("Upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
