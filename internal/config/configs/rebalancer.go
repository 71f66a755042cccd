package configs

// Rebalancer configures budget rebalancing. Money is in minor currency units.
type Rebalancer struct {
	// PoolBudget is the total budget distributed across active campaigns.
	PoolBudget int64 `env:"POOL_BUDGET" envDefault:"1000000"`
	// MinBudget is the default per-campaign floor.
	MinBudget int64 `env:"MIN_BUDGET" envDefault:"10000"`
	// MaxAllocationPercent caps any single campaign as a fraction of the pool.
	MaxAllocationPercent float64 `env:"MAX_ALLOCATION_PERCENT" envDefault:"0.5"`
	// MaxIterations bounds the clamp-and-redistribute loop.
	MaxIterations int `env:"MAX_ITERATIONS" envDefault:"32"`
	// Threshold is the minimum relative budget change that makes a cycle
	// worth persisting.
	Threshold float64 `env:"THRESHOLD" envDefault:"0.15"`
	// CadenceDays is the number of game days between automatic cycles. Zero
	// disables the cadence.
	CadenceDays int `env:"CADENCE_DAYS" envDefault:"7"`
	// WindowDays is the metrics lookback window.
	WindowDays int `env:"WINDOW_DAYS" envDefault:"7"`
	// Policy names the scoring policy: conversions_per_dollar, weighted or ctr.
	Policy string `env:"POLICY" envDefault:"conversions_per_dollar"`
	// AvgOrderValue is used by the weighted policy when revenue is unknown.
	AvgOrderValue int64 `env:"AVG_ORDER_VALUE" envDefault:"5000"`
}
