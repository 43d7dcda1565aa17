package videos

import (
	"errors"
	"time"

	"fansite-app/internal/domain/videos"
	"fansite-app/internal/infra/youtube"

	"gorm.io/gorm"
)

// Fetcher resolves YouTube URLs. Wired to a real client in main, swapped
// for a stub in tests.
var Fetcher youtube.Resolver

// Hard cap per batch sync run. Sequential calls against a quota-limited API
// stay cheap and bounded; the admin just clicks again for the next batch.
const syncBatchSize = 20

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrYoutubeFetch  = errors.New("failed to fetch data from youtube")
)

// VideoCandidate is one imported-but-not-yet-stored video, classified.
type VideoCandidate struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
	PublishedAt  string `json:"published_at,omitempty"`
	ViewCount    string `json:"view_count,omitempty"`
	Type         string `json:"type"`
}

func parsePublishedAt(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// FetchCandidates resolves a video or playlist URL to classified
// candidates. Which kind it is follows from the presence of a list= param.
func FetchCandidates(f youtube.Resolver, rawURL string) ([]VideoCandidate, error) {
	var items []youtube.VideoData
	if youtube.IsPlaylistURL(rawURL) {
		list, err := f.FetchPlaylistVideos(rawURL)
		if err != nil {
			return nil, err
		}
		items = list
	} else {
		one, err := f.FetchVideoDetails(rawURL)
		if err != nil {
			return nil, err
		}
		items = []youtube.VideoData{*one}
	}

	out := make([]VideoCandidate, 0, len(items))
	for _, item := range items {
		out = append(out, VideoCandidate{
			Title:        item.Title,
			URL:          item.URL,
			ThumbnailURL: item.ThumbnailURL,
			PublishedAt:  item.PublishedAt,
			ViewCount:    item.ViewCount,
			Type:         videos.ClassifyTitle(item.Title),
		})
	}
	return out, nil
}

// AddVideo inserts a candidate for the season unless a video with the same
// URL already exists there. The check and insert run in one transaction.
func AddVideo(db *gorm.DB, seasonID string, cand VideoCandidate) (skipped bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing videos.SeasonVideo
		lookupErr := tx.Select("id").
			Where("season_id = ? AND youtube_url = ?", seasonID, cand.URL).
			First(&existing).Error
		if lookupErr == nil {
			skipped = true
			return nil
		}
		if !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return lookupErr
		}

		videoType := cand.Type
		if !videos.IsValidType(videoType) {
			videoType = videos.TypeHighlight
		}
		v := videos.SeasonVideo{
			SeasonID:     seasonID,
			Title:        cand.Title,
			YoutubeURL:   cand.URL,
			ThumbnailURL: cand.ThumbnailURL,
			Type:         videoType,
			ViewCount:    cand.ViewCount,
			PublishedAt:  parsePublishedAt(cand.PublishedAt),
		}
		return tx.Create(&v).Error
	})
	return skipped, err
}

// ImportVideos bulk-adds candidates, skipping duplicates per item.
func ImportVideos(db *gorm.DB, seasonID string, cands []VideoCandidate) (added, skipped int, err error) {
	for _, cand := range cands {
		wasSkipped, addErr := AddVideo(db, seasonID, cand)
		if addErr != nil {
			return added, skipped, addErr
		}
		if wasSkipped {
			skipped++
		} else {
			added++
		}
	}
	return added, skipped, nil
}

// SyncVideoStats re-resolves one stored video and overwrites its title,
// thumbnail, view count and publish date.
func SyncVideoStats(db *gorm.DB, f youtube.Resolver, videoID string) error {
	var v videos.SeasonVideo
	if err := db.First(&v, "id = ?", videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	data, err := f.FetchVideoDetails(v.YoutubeURL)
	if err != nil {
		return ErrYoutubeFetch
	}

	updates := map[string]any{
		"title":         data.Title,
		"thumbnail_url": data.ThumbnailURL,
		"view_count":    data.ViewCount,
	}
	if t := parsePublishedAt(data.PublishedAt); t != nil {
		updates["published_at"] = *t
	}
	return db.Model(&v).Updates(updates).Error
}

// SyncAllVideoStats refreshes up to syncBatchSize videos, stalest first,
// optionally scoped to one season. Items that fail to resolve are skipped
// and do not count toward the returned total.
func SyncAllVideoStats(db *gorm.DB, f youtube.Resolver, seasonID string) (int, error) {
	q := db.Model(&videos.SeasonVideo{}).
		Select("id, youtube_url").
		Order("updated_at ASC").
		Limit(syncBatchSize)
	if seasonID != "" && seasonID != "all" {
		q = q.Where("season_id = ?", seasonID)
	}

	var batch []videos.SeasonVideo
	if err := q.Find(&batch).Error; err != nil {
		return 0, err
	}

	updated := 0
	for _, v := range batch {
		data, err := f.FetchVideoDetails(v.YoutubeURL)
		if err != nil {
			continue // removed or private; leave the stored copy alone
		}
		updates := map[string]any{
			"title":         data.Title,
			"thumbnail_url": data.ThumbnailURL,
			"view_count":    data.ViewCount,
			"updated_at":    time.Now(),
		}
		if t := parsePublishedAt(data.PublishedAt); t != nil {
			updates["published_at"] = *t
		}
		if err := db.Model(&videos.SeasonVideo{}).Where("id = ?", v.ID).Updates(updates).Error; err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// LinkVideosToEpisode makes videoIDs the complete set of videos linked to
// the episode: currently-linked videos outside the set are unlinked, then
// every id in the set is linked. One transaction, idempotent.
func LinkVideosToEpisode(db *gorm.DB, episodeID string, videoIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		unlink := tx.Model(&videos.SeasonVideo{}).Where("episode_id = ?", episodeID)
		if len(videoIDs) > 0 {
			unlink = unlink.Where("id NOT IN ?", videoIDs)
		}
		if err := unlink.Update("episode_id", nil).Error; err != nil {
			return err
		}

		if len(videoIDs) == 0 {
			return nil
		}
		return tx.Model(&videos.SeasonVideo{}).
			Where("id IN ?", videoIDs).
			Update("episode_id", episodeID).Error
	})
}
