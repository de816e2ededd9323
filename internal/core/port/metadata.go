package port

import (
	"context"

	"clipfund/internal/core/domain"
)

// MetadataSource is the outbound port for platform engagement metrics.
// Implementations resolve a classified (platform, contentID) pair into
// normalized metrics, preferring the platform's authoritative API and falling
// back to best-effort retrieval. When every path fails they return the
// degraded stub rather than an error so that submission intake never blocks
// on a metrics outage.
type MetadataSource interface {
	Fetch(ctx context.Context, platform, contentID string) (domain.ClipMetrics, error)
}
