// Package metadata resolves classified clips into normalized engagement
// metrics. Each platform gets an ordered chain of fetchers: the platform's
// authoritative API when credentials are configured, then a best-effort
// scraping proxy. When the whole chain fails the source returns the degraded
// zero-valued stub instead of an error; submissions must stay storable
// through metrics outages.
package metadata

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"clipfund/internal/config/configs"
	"clipfund/internal/core/classify"
	"clipfund/internal/core/domain"
)

// fetcher is one retrieval strategy for one platform.
type fetcher interface {
	Fetch(ctx context.Context, contentID string) (domain.ClipMetrics, error)
}

// Source implements port.MetadataSource by dispatching on the platform tag.
type Source struct {
	chains  map[string][]fetcher
	timeout time.Duration
	logger  *slog.Logger
}

// NewSource builds the per-platform fetcher chains from configuration. An
// unset API key or proxy URL simply drops that link from the chain.
func NewSource(cfg configs.Metadata, client *http.Client, logger *slog.Logger) *Source {
	if client == nil {
		client = &http.Client{}
	}
	chains := make(map[string][]fetcher)
	for _, platform := range []string{
		classify.PlatformTikTok,
		classify.PlatformYouTube,
		classify.PlatformInstagram,
		classify.PlatformTwitter,
	} {
		var chain []fetcher
		if platform == classify.PlatformYouTube && cfg.YouTubeAPIKey != "" {
			chain = append(chain, newYouTubeFetcher(cfg.YouTubeAPIKey, client))
		}
		if cfg.ProxyURL != "" {
			chain = append(chain, newProxyFetcher(cfg.ProxyURL, platform, client))
		}
		chains[platform] = chain
	}
	return &Source{
		chains:  chains,
		timeout: cfg.FetchTimeout,
		logger:  logger,
	}
}

// Fetch tries the platform's chain in order and returns the first successful
// result. Every failure path, including an unknown platform tag and a chain
// that exceeds the fetch timeout, resolves to the degraded stub with a nil
// error.
func (s *Source) Fetch(ctx context.Context, platform, contentID string) (domain.ClipMetrics, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	for _, f := range s.chains[platform] {
		m, err := f.Fetch(ctx, contentID)
		if err == nil {
			m.Origin = domain.MetricsOriginLive
			if m.Hashtags == nil {
				m.Hashtags = []string{}
			}
			return m, nil
		}
		s.logger.Warn("metrics fetch failed",
			slog.String("platform", platform),
			slog.String("content_id", contentID),
			slog.Any("error", err))
	}
	return domain.DegradedMetrics(), nil
}
