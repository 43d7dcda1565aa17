package youtube

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// playlistItems pages are 50 items each; 20 pages is far beyond any real
// playlist we import and bounds a misbehaving upstream.
const maxPlaylistPages = 20

var (
	videoIDPattern  = regexp.MustCompile(`(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)
	playlistPattern = regexp.MustCompile(`[&?]list=([^&]+)`)
)

// VideoData is the subset of YouTube metadata the site stores.
type VideoData struct {
	Title        string
	URL          string
	ThumbnailURL string
	PublishedAt  string
	// Empty for playlist entries: playlistItems.list has no statistics part.
	ViewCount string
}

// Resolver resolves YouTube URLs to metadata. Satisfied by *Client and by
// test stubs.
type Resolver interface {
	FetchVideoDetails(videoURL string) (*VideoData, error)
	FetchPlaylistVideos(playlistURL string) ([]VideoData, error)
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL points the client at a different API root. Used by
// tests to talk to an httptest server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// ExtractVideoID pulls the 11-character video id out of any of the common
// YouTube URL shapes, or returns "" when the URL has none.
func ExtractVideoID(videoURL string) string {
	m := videoIDPattern.FindStringSubmatch(videoURL)
	if m == nil || len(m[2]) != 11 {
		return ""
	}
	return m[2]
}

// ExtractPlaylistID pulls the list= query value, or "" when absent.
func ExtractPlaylistID(playlistURL string) string {
	m := playlistPattern.FindStringSubmatch(playlistURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// IsPlaylistURL reports whether the URL carries a playlist id.
func IsPlaylistURL(u string) bool {
	return ExtractPlaylistID(u) != ""
}

// WatchURL is the canonical form every stored video URL is normalized to.
func WatchURL(videoID string) string {
	return "https://youtube.com/watch?v=" + videoID
}

type thumbnails struct {
	Default struct {
		URL string `json:"url"`
	} `json:"default"`
	High struct {
		URL string `json:"url"`
	} `json:"high"`
}

func (t thumbnails) best() string {
	if t.High.URL != "" {
		return t.High.URL
	}
	return t.Default.URL
}

type videoListResponse struct {
	Items []struct {
		Snippet struct {
			Title       string     `json:"title"`
			PublishedAt string     `json:"publishedAt"`
			Thumbnails  thumbnails `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title       string     `json:"title"`
			PublishedAt string     `json:"publishedAt"`
			Thumbnails  thumbnails `json:"thumbnails"`
			ResourceID  struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *Client) get(endpoint string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	resp, err := c.http.Get(c.baseURL + "/" + endpoint + "?" + params.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube: %s returned status %d", endpoint, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// FetchVideoDetails resolves a single video URL to its current metadata.
func (c *Client) FetchVideoDetails(videoURL string) (*VideoData, error) {
	videoID := ExtractVideoID(videoURL)
	if videoID == "" {
		return nil, fmt.Errorf("youtube: no video id in %q", videoURL)
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", videoID)

	var res videoListResponse
	if err := c.get("videos", params, &res); err != nil {
		return nil, err
	}
	if len(res.Items) == 0 {
		return nil, fmt.Errorf("youtube: video %s not found", videoID)
	}

	item := res.Items[0]
	viewCount := item.Statistics.ViewCount
	if viewCount == "" {
		viewCount = "0"
	}
	return &VideoData{
		Title:        item.Snippet.Title,
		URL:          WatchURL(videoID),
		ThumbnailURL: item.Snippet.Thumbnails.best(),
		PublishedAt:  item.Snippet.PublishedAt,
		ViewCount:    viewCount,
	}, nil
}

// FetchPlaylistVideos resolves a playlist URL to all of its entries,
// following nextPageToken until the upstream runs out of pages.
func (c *Client) FetchPlaylistVideos(playlistURL string) ([]VideoData, error) {
	playlistID := ExtractPlaylistID(playlistURL)
	if playlistID == "" {
		return nil, fmt.Errorf("youtube: no playlist id in %q", playlistURL)
	}

	var all []VideoData
	pageToken := ""
	for page := 0; page < maxPlaylistPages; page++ {
		params := url.Values{}
		params.Set("part", "snippet")
		params.Set("playlistId", playlistID)
		params.Set("maxResults", "50")
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var res playlistItemsResponse
		if err := c.get("playlistItems", params, &res); err != nil {
			return nil, err
		}
		if len(res.Items) == 0 {
			break
		}

		for _, item := range res.Items {
			if item.Snippet.ResourceID.VideoID == "" {
				continue
			}
			all = append(all, VideoData{
				Title:        item.Snippet.Title,
				URL:          WatchURL(item.Snippet.ResourceID.VideoID),
				ThumbnailURL: item.Snippet.Thumbnails.best(),
				PublishedAt:  item.Snippet.PublishedAt,
			})
		}

		pageToken = res.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return all, nil
}
