package configs

// Sentry configures operator notifications. An empty DSN falls back to log
// notifications.
type Sentry struct {
	DSN              string  `env:"DSN"`
	TracesSampleRate float64 `env:"TRACES_SAMPLE_RATE" envDefault:"0"`
}
