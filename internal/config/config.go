package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"campaign-engine/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with the
// given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to operator notifications.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP       configs.HTTP       `envPrefix:"HTTP_"`
	Log        configs.Logger     `envPrefix:"LOG_"`
	Psql       configs.Postgres   `envPrefix:"PSQL_"`
	Store      configs.Store      `envPrefix:"STORE_"`
	Clock      configs.Clock      `envPrefix:"CLOCK_"`
	Executor   configs.Executor   `envPrefix:"EXECUTOR_"`
	Rebalancer configs.Rebalancer `envPrefix:"REBALANCER_"`
	Channel    configs.Channel    `envPrefix:"CHANNEL_"`
	GenAI      configs.GenAI      `envPrefix:"GENAI_"`
	AMQP       configs.AMQP       `envPrefix:"AMQP_"`
	Sentry     configs.Sentry     `envPrefix:"SENTRY_"`
	Compliance configs.Compliance `envPrefix:"COMPLIANCE_"`
}

// Load reads an optional .env file and then environment variables into a
// Config. Variables already set in the environment take precedence over the
// file.
func Load(files ...string) (Config, error) {
	var cfg Config
	if len(files) == 0 {
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
