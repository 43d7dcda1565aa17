package videos

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"fansite-app/database"
	"fansite-app/internal/domain/catalog"
	"fansite-app/internal/domain/videos"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddVideoRequest struct {
	SeasonID string `json:"season_id"`
	VideoCandidate
}

// POST /admin/videos
func AddVideoHandler(c *gin.Context) {
	var req AddVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SeasonID == "" || req.Title == "" || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	skipped, err := AddVideo(database.DB, req.SeasonID, req.VideoCandidate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add video"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skipped": skipped})
}

type FetchRequest struct {
	URL string `json:"url"`
}

// POST /admin/videos/fetch
//
// Resolves a video or playlist URL into classified candidates for the
// import preview. Nothing is written here.
func FetchYoutubeInfo(c *gin.Context) {
	var req FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	cands, err := FetchCandidates(Fetcher, req.URL)
	if err != nil {
		log.Println("YouTube fetch failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch video details"})
		return
	}
	if len(cands) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch playlist or empty"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cands})
}

type ImportRequest struct {
	SeasonID string           `json:"season_id"`
	Videos   []VideoCandidate `json:"videos"`
}

// POST /admin/videos/import
func ImportVideosHandler(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SeasonID == "" || len(req.Videos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	added, skipped, err := ImportVideos(database.DB, req.SeasonID, req.Videos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import videos", "added": added, "skipped": skipped})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "added": added, "skipped": skipped})
}

// POST /admin/videos/:id/sync
func SyncVideoHandler(c *gin.Context) {
	err := SyncVideoStats(database.DB, Fetcher, c.Param("id"))
	switch {
	case errors.Is(err, ErrVideoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
	case errors.Is(err, ErrYoutubeFetch):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch data from YouTube"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video stats"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// POST /admin/videos/sync?season_id=
func SyncAllVideosHandler(c *gin.Context) {
	count, err := SyncAllVideoStats(database.DB, Fetcher, c.Query("season_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sync failed", "count": count})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

type LinkRequest struct {
	VideoIDs []string `json:"video_ids"`
}

// PUT /admin/episodes/:id/videos
func LinkVideosHandler(c *gin.Context) {
	episodeID := c.Param("id")
	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := LinkVideosToEpisode(database.DB, episodeID, req.VideoIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link videos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type UpdateTypeRequest struct {
	Type string `json:"type"`
}

// PUT /admin/videos/:id
func UpdateVideoType(c *gin.Context) {
	var req UpdateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil || !videos.IsValidType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video type"})
		return
	}

	res := database.DB.Model(&videos.SeasonVideo{}).
		Where("id = ?", c.Param("id")).
		Update("type", req.Type)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video type"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /admin/videos/:id
func DeleteVideo(c *gin.Context) {
	if err := database.DB.Delete(&videos.SeasonVideo{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type AdminVideo struct {
	videos.SeasonVideo
	SeasonTitle string `json:"season_title,omitempty"`
	SeasonSlug  string `json:"season_slug,omitempty"`
}

// GET /admin/videos?page=&limit=&season_id=
//
// Admin browser over every stored video, newest first, with minimal season
// fields attached and an exact total for the pager.
func ListAllVideos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	seasonID := c.Query("season_id")

	query := func() *gorm.DB {
		q := database.DB.Model(&videos.SeasonVideo{})
		if seasonID != "" && seasonID != "all" {
			q = q.Where("season_id = ?", seasonID)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}

	var rows []videos.SeasonVideo
	err := query().Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}

	seasonIDs := make([]string, 0, len(rows))
	seen := map[string]bool{}
	for _, v := range rows {
		if !seen[v.SeasonID] {
			seen[v.SeasonID] = true
			seasonIDs = append(seasonIDs, v.SeasonID)
		}
	}

	seasonsByID := map[string]catalog.Season{}
	if len(seasonIDs) > 0 {
		var seasonRows []catalog.Season
		if err := database.DB.Select("id, title, slug").Where("id IN ?", seasonIDs).Find(&seasonRows).Error; err == nil {
			for _, s := range seasonRows {
				seasonsByID[s.ID] = s
			}
		}
	}

	out := make([]AdminVideo, 0, len(rows))
	for _, v := range rows {
		s := seasonsByID[v.SeasonID]
		out = append(out, AdminVideo{SeasonVideo: v, SeasonTitle: s.Title, SeasonSlug: s.Slug})
	}

	c.JSON(http.StatusOK, gin.H{"data": out, "count": total})
}
