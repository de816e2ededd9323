package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"clipfund/internal/core/domain"
)

const youtubeAPIBase = "https://www.googleapis.com/youtube/v3"

// youtubeFetcher calls the YouTube Data API videos endpoint. Counts come
// back as decimal strings in the statistics part.
type youtubeFetcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func newYouTubeFetcher(apiKey string, client *http.Client) *youtubeFetcher {
	return &youtubeFetcher{apiKey: apiKey, baseURL: youtubeAPIBase, client: client}
}

type youtubeVideoList struct {
	Items []struct {
		Snippet struct {
			Title        string    `json:"title"`
			ChannelTitle string    `json:"channelTitle"`
			PublishedAt  time.Time `json:"publishedAt"`
			Tags         []string  `json:"tags"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (f *youtubeFetcher) Fetch(ctx context.Context, contentID string) (domain.ClipMetrics, error) {
	q := url.Values{
		"part": {"snippet,statistics"},
		"id":   {contentID},
		"key":  {f.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		f.baseURL+"/videos?"+q.Encode(), nil)
	if err != nil {
		return domain.ClipMetrics{}, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return domain.ClipMetrics{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.ClipMetrics{}, fmt.Errorf("youtube api status %d", resp.StatusCode)
	}

	var list youtubeVideoList
	if err = json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return domain.ClipMetrics{}, err
	}
	if len(list.Items) == 0 {
		return domain.ClipMetrics{}, fmt.Errorf("youtube video %s not found", contentID)
	}

	item := list.Items[0]
	m := domain.ClipMetrics{
		ViewCount:    parseCount(item.Statistics.ViewCount),
		LikeCount:    parseCount(item.Statistics.LikeCount),
		CommentCount: parseCount(item.Statistics.CommentCount),
		Hashtags:     item.Snippet.Tags,
		Title:        item.Snippet.Title,
		Author:       item.Snippet.ChannelTitle,
		Thumbnail:    item.Snippet.Thumbnails.High.URL,
	}
	if !item.Snippet.PublishedAt.IsZero() {
		published := item.Snippet.PublishedAt
		m.PublishedAt = &published
	}
	return m, nil
}

// parseCount converts an API count string into a non-negative int64. Absent
// or malformed counts become zero so downstream arithmetic stays total.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
