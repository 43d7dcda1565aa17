package cast

import (
	"log"
	"net/http"

	"fansite-app/database"
	"fansite-app/internal/domain/cast"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberRequest struct {
	Name          string `json:"name"`
	EnglishName   string `json:"english_name"`
	Role          string `json:"role"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	Instagram     string `json:"instagram"`
	BirthDate     string `json:"birth_date"`
	Birthplace    string `json:"birthplace"`
	Height        string `json:"height"`
	BloodType     string `json:"blood_type"`
	MBTI          string `json:"mbti"`
	Agency        string `json:"agency"`
	Group         string `json:"group"`
	DebutDate     string `json:"debut_date"`
	Motto         string `json:"motto"`
	DetailContent string `json:"detail_content"`
}

func (r *MemberRequest) toModel() cast.CastMember {
	return cast.CastMember{
		Name:          r.Name,
		EnglishName:   r.EnglishName,
		Role:          r.Role,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		Instagram:     r.Instagram,
		BirthDate:     r.BirthDate,
		Birthplace:    r.Birthplace,
		Height:        r.Height,
		BloodType:     r.BloodType,
		MBTI:          r.MBTI,
		Agency:        r.Agency,
		Group:         r.Group,
		DebutDate:     r.DebutDate,
		Motto:         r.Motto,
		DetailContent: r.DetailContent,
	}
}

// GET /cast
func ListMembers(c *gin.Context) {
	var members []cast.CastMember
	if err := database.DB.Find(&members).Error; err != nil {
		log.Println("Error fetching cast members:", err)
		c.JSON(http.StatusOK, []cast.CastMember{})
		return
	}
	c.JSON(http.StatusOK, members)
}

// GET /cast/:id
func GetMember(c *gin.Context) {
	var member cast.CastMember
	err := database.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("year DESC") }).
		First(&member, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cast member not found"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// POST /admin/cast
//
// Name and role fall back to placeholder values so a card can be created
// first and filled in afterwards.
func AddMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := req.toModel()
	if member.Name == "" {
		member.Name = "New Member"
	}
	if member.Role == "" {
		member.Role = "TBD"
	}

	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cast member"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": member.ID})
}

// PUT /admin/cast/:id
func UpdateMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := req.toModel()
	res := database.DB.Model(&cast.CastMember{}).
		Where("id = ?", c.Param("id")).
		Select("*").
		Omit("id", "created_at").
		Updates(member)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cast member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /admin/cast/:id
func DeleteMember(c *gin.Context) {
	if err := database.DB.Delete(&cast.CastMember{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cast member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type SeasonCastRequest struct {
	Role        string `json:"role"`
	Catchphrase string `json:"catchphrase"`
	ImageURL    string `json:"image_url"`
}

// PUT /admin/season-cast/:id
func UpdateSeasonCast(c *gin.Context) {
	var req SeasonCastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&cast.SeasonCast{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]any{
			"role":        req.Role,
			"catchphrase": req.Catchphrase,
			"image_url":   req.ImageURL,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cast info"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Season cast entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type AddSeasonCastRequest struct {
	SeasonID    string `json:"season_id"`
	CastID      string `json:"cast_id"`
	Role        string `json:"role"`
	Catchphrase string `json:"catchphrase"`
	ImageURL    string `json:"image_url"`
}

// POST /admin/season-cast
func AddSeasonCast(c *gin.Context) {
	var req AddSeasonCastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SeasonID == "" || req.CastID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	row := cast.SeasonCast{
		SeasonID:    req.SeasonID,
		CastID:      req.CastID,
		Role:        req.Role,
		Catchphrase: req.Catchphrase,
		ImageURL:    req.ImageURL,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cast to season"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": row.ID})
}

// DELETE /admin/season-cast/:id
func DeleteSeasonCast(c *gin.Context) {
	if err := database.DB.Delete(&cast.SeasonCast{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cast"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type CastImageRequest struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
	Year     string `json:"year"`
}

// POST /admin/cast/:id/images
func AddCastImage(c *gin.Context) {
	var req CastImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}

	img := cast.CastImage{
		CastID:   c.Param("id"),
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
		Year:     req.Year,
	}
	if err := database.DB.Create(&img).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": img.ID})
}

// DELETE /admin/cast-images/:id
func DeleteCastImage(c *gin.Context) {
	if err := database.DB.Delete(&cast.CastImage{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
