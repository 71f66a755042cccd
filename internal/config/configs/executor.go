package configs

import "time"

// Executor configures campaign execution. Defaults mirror the retry and
// concurrency settings of the campaign runner.
type Executor struct {
	// MaxConcurrent bounds how many campaigns execute at the same time.
	MaxConcurrent int `env:"MAX_CONCURRENT" envDefault:"10"`
	// PublishAttempts is the total number of publish attempts per entry.
	PublishAttempts int `env:"PUBLISH_ATTEMPTS" envDefault:"3"`
	// PublishBackoff is multiplied by the attempt number between retries.
	PublishBackoff time.Duration `env:"PUBLISH_BACKOFF" envDefault:"500ms"`
	// PublishTimeout bounds a single publish attempt.
	PublishTimeout time.Duration `env:"PUBLISH_TIMEOUT" envDefault:"10s"`
	// RetryDelay is how far after a failure a retry entry is scheduled.
	RetryDelay time.Duration `env:"RETRY_DELAY" envDefault:"1h"`
	// RetentionDays is how long terminal entries are kept before cleanup.
	RetentionDays int `env:"RETENTION_DAYS" envDefault:"30"`
	// PlanHorizonDays is how far ahead recurring occurrences are planned.
	PlanHorizonDays int `env:"PLAN_HORIZON_DAYS" envDefault:"180"`
}
