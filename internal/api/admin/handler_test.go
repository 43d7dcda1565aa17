package admin

import (
	"testing"

	"fansite-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingPointsDropOrphans(t *testing.T) {
	db := setupTestDB(t)

	s := catalog.Season{Slug: "s1", Title: "Season 1", Year: 2023, ColorTheme: "#ff5500"}
	require.NoError(t, db.Create(&s).Error)

	require.NoError(t, db.Create(&catalog.Rating{SeasonID: s.ID, EpisodeNumber: 2, Rating: 9}).Error)
	require.NoError(t, db.Create(&catalog.Rating{SeasonID: s.ID, EpisodeNumber: 1, Rating: 8}).Error)
	// rating pointing at a deleted season
	require.NoError(t, db.Create(&catalog.Rating{
		SeasonID: "99999999-9999-9999-9999-999999999999", EpisodeNumber: 1, Rating: 5,
	}).Error)

	points, err := ratingPoints(db)
	require.NoError(t, err)
	require.Len(t, points, 2, "orphaned ratings are dropped")

	assert.Equal(t, 1, points[0].EpisodeNumber)
	assert.Equal(t, 2, points[1].EpisodeNumber)
	assert.Equal(t, "s1", points[0].SeasonSlug)
	assert.Equal(t, "#ff5500", points[0].ColorTheme)
}
