package admin

import (
	"testing"

	"fansite-app/database"
	"fansite-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestFetchTablePageRejectsUnknownTable(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"users", "pg_catalog.pg_tables", "seasons; DROP TABLE seasons", ""} {
		_, err := FetchTablePage(db, table, 1, 50, "")
		assert.Error(t, err, table)
	}
}

func TestFetchTablePagePagesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	seasonID := "11111111-1111-1111-1111-111111111111"

	for i := 1; i <= 3; i++ {
		require.NoError(t, db.Create(&catalog.Rating{
			SeasonID: seasonID, EpisodeNumber: i, Rating: float64(i),
		}).Error)
	}

	page, err := FetchTablePage(db, "ratings", 1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Count)
	assert.Len(t, page.Data, 2)

	page2, err := FetchTablePage(db, "ratings", 2, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), page2.Count)
	assert.Len(t, page2.Data, 1)

	// out-of-range paging params fall back to defaults
	page, err = FetchTablePage(db, "ratings", 0, 0, "")
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
}

func TestFetchTablePageSeasonFilter(t *testing.T) {
	db := setupTestDB(t)
	s1 := "11111111-1111-1111-1111-111111111111"
	s2 := "22222222-2222-2222-2222-222222222222"

	require.NoError(t, db.Create(&catalog.Rating{SeasonID: s1, EpisodeNumber: 1, Rating: 8}).Error)
	require.NoError(t, db.Create(&catalog.Rating{SeasonID: s2, EpisodeNumber: 1, Rating: 9}).Error)

	page, err := FetchTablePage(db, "ratings", 1, 50, s1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Count)
	require.Len(t, page.Data, 1)
	assert.EqualValues(t, 1, page.Data[0]["episode_number"])

	page, err = FetchTablePage(db, "ratings", 1, 50, "all")
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Count)
}

func TestFetchTablePageRetriesWithoutOrder(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// browsable table without a created_at column
	require.NoError(t, db.Exec(`CREATE TABLE season_cast (id TEXT PRIMARY KEY, season_id TEXT, role TEXT)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO season_cast VALUES ('a', 's1', 'mc'), ('b', 's2', 'guest')`).Error)

	page, err := FetchTablePage(db, "season_cast", 1, 50, "")
	require.NoError(t, err, "missing created_at falls back to unordered read")
	assert.Equal(t, int64(2), page.Count)
	assert.Len(t, page.Data, 2)

	// the retry keeps the season filter
	page, err = FetchTablePage(db, "season_cast", 1, 50, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Count)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "mc", page.Data[0]["role"])
}
