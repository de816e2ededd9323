package domain

import "time"

// MetricsOrigin distinguishes metrics fetched from a platform source from the
// zero-valued stub recorded when every fetch path failed. A degraded record is
// storable like any other so that submissions never fail on metrics outages.
type MetricsOrigin string

const (
	MetricsOriginLive     MetricsOrigin = "live"
	MetricsOriginDegraded MetricsOrigin = "degraded"
)

// PlaceholderThumbnail is recorded when no thumbnail could be resolved.
const PlaceholderThumbnail = "/static/thumbnail-placeholder.png"

// ClipMetrics is the normalized engagement shape shared by all platforms.
// Counts are non-negative; absence is represented as zero, never null, so
// payout arithmetic stays total.
type ClipMetrics struct {
	ViewCount    int64         `json:"view_count"`
	LikeCount    int64         `json:"like_count"`
	CommentCount int64         `json:"comment_count"`
	Hashtags     []string      `json:"hashtags"`
	Title        string        `json:"title"`
	Author       string        `json:"author"`
	Thumbnail    string        `json:"thumbnail"`
	PublishedAt  *time.Time    `json:"published_at,omitempty"`
	Origin       MetricsOrigin `json:"origin"`
}

// DegradedMetrics returns the stub recorded when both the authoritative and
// fallback fetch paths fail.
func DegradedMetrics() ClipMetrics {
	return ClipMetrics{
		Hashtags:  []string{},
		Thumbnail: PlaceholderThumbnail,
		Origin:    MetricsOriginDegraded,
	}
}
