package metadata

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipfund/internal/config/configs"
	"clipfund/internal/core/classify"
	"clipfund/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestYouTubeFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [{
				"snippet": {
					"title": "Never Gonna Give You Up",
					"channelTitle": "Rick Astley",
					"publishedAt": "2009-10-25T06:57:33Z",
					"tags": ["music"],
					"thumbnails": {"high": {"url": "https://i.ytimg.com/x/hq.jpg"}}
				},
				"statistics": {
					"viewCount": "1500000000",
					"likeCount": "17000000",
					"commentCount": "2300000"
				}
			}]
		}`))
	}))
	defer srv.Close()

	f := newYouTubeFetcher("test-key", srv.Client())
	f.baseURL = srv.URL

	m, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000_000), m.ViewCount)
	assert.Equal(t, int64(17_000_000), m.LikeCount)
	assert.Equal(t, int64(2_300_000), m.CommentCount)
	assert.Equal(t, "Never Gonna Give You Up", m.Title)
	assert.Equal(t, "Rick Astley", m.Author)
	assert.Equal(t, []string{"music"}, m.Hashtags)
	require.NotNil(t, m.PublishedAt)
	assert.Equal(t, 2009, m.PublishedAt.Year())
}

func TestYouTubeFetcherVideoMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	f := newYouTubeFetcher("test-key", srv.Client())
	f.baseURL = srv.URL

	_, err := f.Fetch(context.Background(), "gone")
	assert.Error(t, err)
}

func TestProxyFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/metrics/tiktok/7301234567890123456", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"view_count": 2000000,
			"like_count": 150000,
			"comment_count": 4200,
			"hashtags": ["fyp", "dance"],
			"title": "dance clip",
			"author": "@creator",
			"thumbnail": "https://cdn.example/thumb.jpg"
		}`))
	}))
	defer srv.Close()

	f := newProxyFetcher(srv.URL, classify.PlatformTikTok, srv.Client())

	m, err := f.Fetch(context.Background(), "7301234567890123456")
	require.NoError(t, err)
	assert.Equal(t, int64(2_000_000), m.ViewCount)
	assert.Equal(t, []string{"fyp", "dance"}, m.Hashtags)
	assert.Equal(t, "@creator", m.Author)
}

func TestProxyFetcherClampsNegativeCounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"view_count": -5, "like_count": 10}`))
	}))
	defer srv.Close()

	f := newProxyFetcher(srv.URL, classify.PlatformTikTok, srv.Client())

	m, err := f.Fetch(context.Background(), "1")
	require.NoError(t, err)
	assert.Zero(t, m.ViewCount)
	assert.Equal(t, int64(10), m.LikeCount)
}

// The source falls through to the proxy when the authoritative API errors.
func TestSourceFallsBackToProxy(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"view_count": 123456, "title": "fallback"}`))
	}))
	defer proxy.Close()

	src := NewSource(configs.Metadata{
		ProxyURL:     proxy.URL,
		FetchTimeout: 5 * time.Second,
	}, proxy.Client(), testLogger())

	m, err := src.Fetch(context.Background(), classify.PlatformTikTok, "999")
	require.NoError(t, err)
	assert.Equal(t, domain.MetricsOriginLive, m.Origin)
	assert.Equal(t, int64(123_456), m.ViewCount)
	assert.Equal(t, "fallback", m.Title)
}

// Every link failing resolves to the degraded stub, never an error.
func TestSourceDegradesWhenChainFails(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer proxy.Close()

	src := NewSource(configs.Metadata{
		ProxyURL:     proxy.URL,
		FetchTimeout: 5 * time.Second,
	}, proxy.Client(), testLogger())

	m, err := src.Fetch(context.Background(), classify.PlatformInstagram, "abc")
	require.NoError(t, err)
	assert.Equal(t, domain.MetricsOriginDegraded, m.Origin)
	assert.Zero(t, m.ViewCount)
	assert.Equal(t, domain.PlaceholderThumbnail, m.Thumbnail)
	assert.NotNil(t, m.Hashtags)
}

// A platform with no configured links degrades immediately.
func TestSourceDegradesWithEmptyChain(t *testing.T) {
	src := NewSource(configs.Metadata{FetchTimeout: time.Second}, nil, testLogger())

	m, err := src.Fetch(context.Background(), classify.PlatformTwitter, "123")
	require.NoError(t, err)
	assert.Equal(t, domain.MetricsOriginDegraded, m.Origin)
}

// A slow upstream trips the fetch timeout and degrades.
func TestSourceTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	src := NewSource(configs.Metadata{
		ProxyURL:     slow.URL,
		FetchTimeout: 50 * time.Millisecond,
	}, slow.Client(), testLogger())

	start := time.Now()
	m, err := src.Fetch(context.Background(), classify.PlatformTikTok, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.MetricsOriginDegraded, m.Origin)
	assert.Less(t, time.Since(start), time.Second)
}
