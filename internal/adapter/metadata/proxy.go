package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clipfund/internal/core/domain"
)

// proxyFetcher is the best-effort fallback path: a server-side scraping proxy
// that exposes one normalized endpoint per platform,
// GET {base}/api/metrics/{platform}/{contentID}.
type proxyFetcher struct {
	baseURL  string
	platform string
	client   *http.Client
}

func newProxyFetcher(baseURL, platform string, client *http.Client) *proxyFetcher {
	return &proxyFetcher{
		baseURL:  strings.TrimRight(baseURL, "/"),
		platform: platform,
		client:   client,
	}
}

type proxyMetrics struct {
	ViewCount    int64      `json:"view_count"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	Hashtags     []string   `json:"hashtags"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	Thumbnail    string     `json:"thumbnail"`
	PublishedAt  *time.Time `json:"published_at"`
}

func (f *proxyFetcher) Fetch(ctx context.Context, contentID string) (domain.ClipMetrics, error) {
	endpoint := fmt.Sprintf("%s/api/metrics/%s/%s",
		f.baseURL, f.platform, url.PathEscape(contentID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ClipMetrics{}, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return domain.ClipMetrics{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.ClipMetrics{}, fmt.Errorf("metrics proxy status %d", resp.StatusCode)
	}

	var p proxyMetrics
	if err = json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return domain.ClipMetrics{}, err
	}
	m := domain.ClipMetrics{
		ViewCount:    nonNegative(p.ViewCount),
		LikeCount:    nonNegative(p.LikeCount),
		CommentCount: nonNegative(p.CommentCount),
		Hashtags:     p.Hashtags,
		Title:        p.Title,
		Author:       p.Author,
		Thumbnail:    p.Thumbnail,
		PublishedAt:  p.PublishedAt,
	}
	return m, nil
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
