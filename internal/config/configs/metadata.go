package configs

import "time"

// Metadata configures the platform metrics adapters. Platform API keys are
// optional; an adapter without credentials skips the authoritative path and
// goes straight to the scrape proxy. An empty ProxyURL disables the fallback
// path entirely, in which case failed fetches degrade to the stub record.
type Metadata struct {
	// YouTubeAPIKey authenticates against the YouTube Data API.
	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`
	// ProxyURL is the base URL of the server-side scraping proxy used as the
	// best-effort fallback for every platform.
	ProxyURL string `env:"PROXY_URL"`
	// FetchTimeout bounds one metrics fetch across both paths. A fetch that
	// does not complete in time resolves to the degraded stub.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"5s"`
}
