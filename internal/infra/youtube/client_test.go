package youtube

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://example.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=short", ""},
		{"https://www.youtube.com/playlist?list=PL123", ""},
		{"not a url", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractVideoID(tt.url), tt.url)
	}
}

func TestExtractPlaylistID(t *testing.T) {
	assert.Equal(t, "PLxyz", ExtractPlaylistID("https://www.youtube.com/playlist?list=PLxyz"))
	assert.Equal(t, "PLxyz", ExtractPlaylistID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLxyz"))
	assert.Equal(t, "", ExtractPlaylistID("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))

	assert.True(t, IsPlaylistURL("https://www.youtube.com/playlist?list=PLxyz"))
	assert.False(t, IsPlaylistURL("https://youtu.be/dQw4w9WgXcQ"))
}

func TestFetchVideoDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("id"))
		fmt.Fprint(w, `{"items":[{
			"snippet":{
				"title":"Never Gonna Give You Up",
				"publishedAt":"2009-10-25T06:57:33Z",
				"thumbnails":{
					"default":{"url":"https://img.example/default.jpg"},
					"high":{"url":"https://img.example/high.jpg"}
				}
			},
			"statistics":{"viewCount":"1234567"}
		}]}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	data, err := c.FetchVideoDetails("https://youtu.be/dQw4w9WgXcQ?t=5")
	require.NoError(t, err)

	assert.Equal(t, "Never Gonna Give You Up", data.Title)
	assert.Equal(t, "https://youtube.com/watch?v=dQw4w9WgXcQ", data.URL)
	assert.Equal(t, "https://img.example/high.jpg", data.ThumbnailURL)
	assert.Equal(t, "2009-10-25T06:57:33Z", data.PublishedAt)
	assert.Equal(t, "1234567", data.ViewCount)
}

func TestFetchVideoDetailsThumbnailFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[{
			"snippet":{
				"title":"Old upload",
				"thumbnails":{"default":{"url":"https://img.example/default.jpg"}}
			},
			"statistics":{}
		}]}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	data, err := c.FetchVideoDetails("https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, "https://img.example/default.jpg", data.ThumbnailURL)
	assert.Equal(t, "0", data.ViewCount)
}

func TestFetchVideoDetailsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)

	_, err := c.FetchVideoDetails("https://www.youtube.com/playlist?list=PLxyz")
	assert.Error(t, err, "URL without a video id")

	_, err = c.FetchVideoDetails("https://youtu.be/dQw4w9WgXcQ")
	assert.Error(t, err, "video not found upstream")
}

func TestFetchPlaylistVideosPaginates(t *testing.T) {
	var pagesServed int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playlistItems", r.URL.Path)
		assert.Equal(t, "PLxyz", r.URL.Query().Get("playlistId"))
		pagesServed++

		if r.URL.Query().Get("pageToken") == "" {
			fmt.Fprint(w, `{"nextPageToken":"page2","items":[
				{"snippet":{"title":"Ep.1","publishedAt":"2024-01-01T00:00:00Z",
					"thumbnails":{"high":{"url":"https://img.example/1.jpg"}},
					"resourceId":{"videoId":"aaaaaaaaaaa"}}},
				{"snippet":{"title":"Deleted video","resourceId":{"videoId":""}}}
			]}`)
			return
		}
		assert.Equal(t, "page2", r.URL.Query().Get("pageToken"))
		fmt.Fprint(w, `{"items":[
			{"snippet":{"title":"Ep.2","publishedAt":"2024-01-08T00:00:00Z",
				"thumbnails":{"default":{"url":"https://img.example/2.jpg"}},
				"resourceId":{"videoId":"bbbbbbbbbbb"}}}
		]}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	videos, err := c.FetchPlaylistVideos("https://www.youtube.com/playlist?list=PLxyz")
	require.NoError(t, err)

	assert.Equal(t, 2, pagesServed)
	require.Len(t, videos, 2, "entries without a video id are skipped")

	assert.Equal(t, "Ep.1", videos[0].Title)
	assert.Equal(t, "https://youtube.com/watch?v=aaaaaaaaaaa", videos[0].URL)
	assert.Equal(t, "https://img.example/1.jpg", videos[0].ThumbnailURL)
	assert.Empty(t, videos[0].ViewCount, "playlist items carry no statistics")

	assert.Equal(t, "Ep.2", videos[1].Title)
	assert.Equal(t, "https://img.example/2.jpg", videos[1].ThumbnailURL)
}

func TestFetchPlaylistVideosUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("bad-key", srv.URL)
	_, err := c.FetchPlaylistVideos("https://www.youtube.com/playlist?list=PLxyz")
	assert.Error(t, err)
}
