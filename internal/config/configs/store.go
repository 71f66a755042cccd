package configs

// Store selects the persistence backend for campaigns, schedules, metrics and
// clock state.
type Store struct {
	// Driver is "memory" (default) or "postgres".
	Driver string `env:"DRIVER" envDefault:"memory"`
}

// UsePostgres reports whether the postgres adapters should be wired.
func (c Store) UsePostgres() bool {
	return c.Driver == "postgres"
}
