package configs

import "time"

// Redis configures the metrics cache in front of the metadata adapters. An
// empty Address disables caching; the service runs fine without it.
type Redis struct {
	Address  string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	// CacheTTL bounds how long fetched metrics are reused before the
	// platform source is consulted again.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}
