package videos

import (
	"errors"
	"testing"

	"fansite-app/database"
	"fansite-app/internal/domain/videos"
	"fansite-app/internal/infra/youtube"

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

// stubResolver serves canned metadata per video URL and records calls.
type stubResolver struct {
	videos   map[string]youtube.VideoData
	playlist []youtube.VideoData
	calls    []string
}

func (s *stubResolver) FetchVideoDetails(videoURL string) (*youtube.VideoData, error) {
	s.calls = append(s.calls, videoURL)
	data, ok := s.videos[videoURL]
	if !ok {
		return nil, errors.New("stub: video unavailable")
	}
	return &data, nil
}

func (s *stubResolver) FetchPlaylistVideos(playlistURL string) ([]youtube.VideoData, error) {
	s.calls = append(s.calls, playlistURL)
	if s.playlist == nil {
		return nil, errors.New("stub: playlist unavailable")
	}
	return s.playlist, nil
}

func watchURL(id string) string {
	return "https://youtube.com/watch?v=" + id
}

func TestFetchCandidatesClassifies(t *testing.T) {
	stub := &stubResolver{playlist: []youtube.VideoData{
		{Title: "EP.1 Full Version", URL: watchURL("aaaaaaaaaaa")},
		{Title: "Official Teaser", URL: watchURL("bbbbbbbbbbb")},
		{Title: "Week 3 best bits", URL: watchURL("ccccccccccc")},
	}}

	cands, err := FetchCandidates(stub, "https://www.youtube.com/playlist?list=PLxyz")
	require.NoError(t, err)
	require.Len(t, cands, 3)

	assert.Equal(t, videos.TypeFull, cands[0].Type)
	assert.Equal(t, videos.TypeTeaser, cands[1].Type)
	assert.Equal(t, videos.TypeHighlight, cands[2].Type)
}

func TestFetchCandidatesSingleVideo(t *testing.T) {
	url := watchURL("aaaaaaaaaaa")
	stub := &stubResolver{videos: map[string]youtube.VideoData{
		url: {Title: "Making Film", URL: url, ViewCount: "42"},
	}}

	cands, err := FetchCandidates(stub, url)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, videos.TypeMaking, cands[0].Type)
	assert.Equal(t, "42", cands[0].ViewCount)
}

func TestImportVideosSkipsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	seasonID := "11111111-1111-1111-1111-111111111111"

	cands := []VideoCandidate{
		{Title: "Ep.1 full", URL: watchURL("aaaaaaaaaaa"), Type: videos.TypeFull},
		{Title: "Teaser", URL: watchURL("bbbbbbbbbbb"), Type: videos.TypeTeaser},
	}

	added, skipped, err := ImportVideos(db, seasonID, cands)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 0, skipped)

	// re-importing the same set is a no-op
	added, skipped, err = ImportVideos(db, seasonID, cands)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Equal(t, 2, skipped)

	var count int64
	require.NoError(t, db.Model(&videos.SeasonVideo{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestImportVideosSameURLDifferentSeason(t *testing.T) {
	db := setupTestDB(t)
	cand := []VideoCandidate{{Title: "clip", URL: watchURL("aaaaaaaaaaa")}}

	_, _, err := ImportVideos(db, "11111111-1111-1111-1111-111111111111", cand)
	require.NoError(t, err)
	added, skipped, err := ImportVideos(db, "22222222-2222-2222-2222-222222222222", cand)
	require.NoError(t, err)

	// dedupe is per season
	assert.Equal(t, 1, added)
	assert.Equal(t, 0, skipped)
}

func TestAddVideoRejectsUnknownType(t *testing.T) {
	db := setupTestDB(t)
	_, err := AddVideo(db, "11111111-1111-1111-1111-111111111111", VideoCandidate{
		Title: "clip", URL: watchURL("aaaaaaaaaaa"), Type: "documentary",
	})
	require.NoError(t, err)

	var v videos.SeasonVideo
	require.NoError(t, db.First(&v).Error)
	assert.Equal(t, videos.TypeHighlight, v.Type)
}

func TestSyncVideoStats(t *testing.T) {
	db := setupTestDB(t)
	url := watchURL("aaaaaaaaaaa")
	v := videos.SeasonVideo{
		SeasonID:   "11111111-1111-1111-1111-111111111111",
		Title:      "old title",
		YoutubeURL: url,
		ViewCount:  "10",
	}
	require.NoError(t, db.Create(&v).Error)

	stub := &stubResolver{videos: map[string]youtube.VideoData{
		url: {
			Title:        "new title",
			URL:          url,
			ThumbnailURL: "https://img.example/new.jpg",
			ViewCount:    "999",
			PublishedAt:  "2024-03-01T12:00:00Z",
		},
	}}

	require.NoError(t, SyncVideoStats(db, stub, v.ID))

	var got videos.SeasonVideo
	require.NoError(t, db.First(&got, "id = ?", v.ID).Error)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "https://img.example/new.jpg", got.ThumbnailURL)
	assert.Equal(t, "999", got.ViewCount)
	require.NotNil(t, got.PublishedAt)
	assert.Equal(t, 2024, got.PublishedAt.Year())
}

func TestSyncVideoStatsErrors(t *testing.T) {
	db := setupTestDB(t)
	stub := &stubResolver{}

	err := SyncVideoStats(db, stub, "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, ErrVideoNotFound)

	v := videos.SeasonVideo{
		SeasonID:   "11111111-1111-1111-1111-111111111111",
		Title:      "clip",
		YoutubeURL: watchURL("aaaaaaaaaaa"),
	}
	require.NoError(t, db.Create(&v).Error)

	err = SyncVideoStats(db, stub, v.ID)
	assert.ErrorIs(t, err, ErrYoutubeFetch)
}

func TestSyncAllVideoStatsSkipsFailures(t *testing.T) {
	db := setupTestDB(t)
	seasonID := "11111111-1111-1111-1111-111111111111"

	okURL := watchURL("aaaaaaaaaaa")
	goneURL := watchURL("bbbbbbbbbbb")
	for _, u := range []string{okURL, goneURL} {
		require.NoError(t, db.Create(&videos.SeasonVideo{
			SeasonID: seasonID, Title: "clip", YoutubeURL: u, ViewCount: "1",
		}).Error)
	}

	stub := &stubResolver{videos: map[string]youtube.VideoData{
		okURL: {Title: "refreshed", URL: okURL, ViewCount: "500"},
	}}

	updated, err := SyncAllVideoStats(db, stub, seasonID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Len(t, stub.calls, 2, "every batch item is attempted")

	var refreshed videos.SeasonVideo
	require.NoError(t, db.First(&refreshed, "youtube_url = ?", okURL).Error)
	assert.Equal(t, "500", refreshed.ViewCount)

	// the failed item keeps its stored copy
	var untouched videos.SeasonVideo
	require.NoError(t, db.First(&untouched, "youtube_url = ?", goneURL).Error)
	assert.Equal(t, "clip", untouched.Title)
	assert.Equal(t, "1", untouched.ViewCount)
}

func TestSyncAllVideoStatsSeasonFilter(t *testing.T) {
	db := setupTestDB(t)
	s1 := "11111111-1111-1111-1111-111111111111"
	s2 := "22222222-2222-2222-2222-222222222222"

	u1 := watchURL("aaaaaaaaaaa")
	u2 := watchURL("bbbbbbbbbbb")
	require.NoError(t, db.Create(&videos.SeasonVideo{SeasonID: s1, Title: "a", YoutubeURL: u1}).Error)
	require.NoError(t, db.Create(&videos.SeasonVideo{SeasonID: s2, Title: "b", YoutubeURL: u2}).Error)

	stub := &stubResolver{videos: map[string]youtube.VideoData{
		u1: {Title: "a2", URL: u1},
		u2: {Title: "b2", URL: u2},
	}}

	updated, err := SyncAllVideoStats(db, stub, s1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, []string{u1}, stub.calls)

	stub.calls = nil
	updated, err = SyncAllVideoStats(db, stub, "all")
	require.NoError(t, err)
	assert.Equal(t, 2, updated)
}

func TestLinkVideosToEpisode(t *testing.T) {
	db := setupTestDB(t)
	seasonID := "11111111-1111-1111-1111-111111111111"
	episodeID := "33333333-3333-3333-3333-333333333333"

	mk := func(id string) videos.SeasonVideo {
		v := videos.SeasonVideo{SeasonID: seasonID, Title: "clip", YoutubeURL: watchURL(id)}
		require.NoError(t, db.Create(&v).Error)
		return v
	}
	a, b, c := mk("aaaaaaaaaaa"), mk("bbbbbbbbbbb"), mk("ccccccccccc")

	linked := func(videoID string) *string {
		var v videos.SeasonVideo
		require.NoError(t, db.First(&v, "id = ?", videoID).Error)
		return v.EpisodeID
	}

	require.NoError(t, LinkVideosToEpisode(db, episodeID, []string{a.ID, b.ID}))
	require.NotNil(t, linked(a.ID))
	require.NotNil(t, linked(b.ID))
	assert.Nil(t, linked(c.ID))

	// relinking with {b, c} unlinks a and links c
	require.NoError(t, LinkVideosToEpisode(db, episodeID, []string{b.ID, c.ID}))
	assert.Nil(t, linked(a.ID))
	require.NotNil(t, linked(b.ID))
	require.NotNil(t, linked(c.ID))
	assert.Equal(t, episodeID, *linked(b.ID))

	// idempotent
	require.NoError(t, LinkVideosToEpisode(db, episodeID, []string{b.ID, c.ID}))
	require.NotNil(t, linked(b.ID))
	require.NotNil(t, linked(c.ID))

	// empty set clears the episode
	require.NoError(t, LinkVideosToEpisode(db, episodeID, nil))
	assert.Nil(t, linked(b.ID))
	assert.Nil(t, linked(c.ID))
}
