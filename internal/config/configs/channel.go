package configs

import (
	"net/url"
	"time"
)

// Channel configures how content is produced and delivered for the social,
// email and search channels.
type Channel struct {
	// Transport is "simulated" (default), "webhook" or "amqp".
	Transport string `env:"TRANSPORT" envDefault:"simulated"`
	// Generator is "template" (default) or "genai".
	Generator string `env:"GENERATOR" envDefault:"template"`

	SocialURL url.URL `env:"SOCIAL_URL" envDefault:"http://localhost:9001/social/posts"`
	EmailURL  url.URL `env:"EMAIL_URL" envDefault:"http://localhost:9001/email/campaigns"`
	SearchURL url.URL `env:"SEARCH_URL" envDefault:"http://localhost:9001/search/ads"`
	// APIKey is sent as a bearer token to webhook endpoints.
	APIKey string `env:"API_KEY"`
	// RateLimit is the number of webhook requests per second per channel.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"5"`
	RateBurst int     `env:"RATE_BURST" envDefault:"5"`
	// Timeout is the HTTP client timeout for webhook calls.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
