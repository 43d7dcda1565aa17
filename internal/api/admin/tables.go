package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fansite-app/database"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Tables the generic browser may touch. Anything else is rejected before a
// single query runs.
var browsableTables = map[string]bool{
	"seasons":          true,
	"episodes":         true,
	"games":            true,
	"ratings":          true,
	"locations":        true,
	"season_videos":    true,
	"season_cast":      true,
	"cast_members":     true,
	"cast_images":      true,
	"season_images":    true,
	"mascots":          true,
	"season_mascots":   true,
	"mascot_gallery":   true,
	"social_platforms": true,
}

// TablePage is one page of raw rows plus the exact total for the pager.
type TablePage struct {
	Data  []map[string]any `json:"data"`
	Count int64            `json:"count"`
}

func isUndefinedColumn(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42703"
	}
	// sqlite wording, for the test store
	return err != nil && strings.Contains(err.Error(), "no such column")
}

func browseQuery(db *gorm.DB, table, seasonID string) *gorm.DB {
	q := db.Table(table)
	if seasonID != "" && seasonID != "all" {
		q = q.Where("season_id = ?", seasonID)
	}
	return q
}

// FetchTablePage reads one page of an allow-listed table, newest rows
// first. Tables without a created_at column are re-read unordered instead
// of failing: the browser must cope with heterogeneous schemas.
func FetchTablePage(db *gorm.DB, table string, page, pageSize int, seasonID string) (*TablePage, error) {
	if !browsableTables[table] {
		return nil, errors.New("table not browsable")
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	var total int64
	if err := browseQuery(db, table, seasonID).Count(&total).Error; err != nil {
		return nil, err
	}

	rows := []map[string]any{}
	err := browseQuery(db, table, seasonID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&rows).Error
	if isUndefinedColumn(err) {
		rows = []map[string]any{}
		err = browseQuery(db, table, seasonID).
			Offset(offset).
			Limit(pageSize).
			Find(&rows).Error
	}
	if err != nil {
		return nil, err
	}
	return &TablePage{Data: rows, Count: total}, nil
}

// GET /admin/tables/:table?page=&page_size=&season_id=
func BrowseTable(c *gin.Context) {
	table := c.Param("table")
	if !browsableTables[table] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown table"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	result, err := FetchTablePage(database.DB, table, page, pageSize, c.Query("season_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load table data"})
		return
	}
	c.JSON(http.StatusOK, result)
}
