package configs

import "time"

// Payment configures the external payment processor client. BaseURL points
// at the processor API, SecretKey authenticates server-side calls and
// WebhookSecret verifies the HMAC signature on asynchronous callbacks.
type Payment struct {
	BaseURL       string        `env:"BASE_URL" envDefault:"https://api.payments.example.com"`
	SecretKey     string        `env:"SECRET_KEY"`
	WebhookSecret string        `env:"WEBHOOK_SECRET"`
	Currency      string        `env:"CURRENCY" envDefault:"usd"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
