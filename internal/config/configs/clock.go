package configs

import (
	"fmt"
	"time"
)

// Clock configures the game clock. Each speed maps to the wall-clock interval
// of one simulated day.
type Clock struct {
	Slow   time.Duration `env:"SLOW_INTERVAL" envDefault:"30s"`
	Medium time.Duration `env:"MEDIUM_INTERVAL" envDefault:"15s"`
	Fast   time.Duration `env:"FAST_INTERVAL" envDefault:"5s"`
	// Speed is the initial speed when no persisted state exists.
	Speed string `env:"SPEED" envDefault:"medium"`
	// StartDate is the initial game date (YYYY-MM-DD). Empty means today (UTC).
	StartDate string `env:"START_DATE"`
}

// Interval returns the tick interval for a speed name.
func (c Clock) Interval(speed string) (time.Duration, error) {
	switch speed {
	case "slow":
		return c.Slow, nil
	case "medium":
		return c.Medium, nil
	case "fast":
		return c.Fast, nil
	default:
		return 0, fmt.Errorf("unknown game speed %q", speed)
	}
}

// InitialDate parses StartDate, falling back to now truncated to a UTC day.
func (c Clock) InitialDate(now time.Time) (time.Time, error) {
	if c.StartDate == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(time.DateOnly, c.StartDate)
}
