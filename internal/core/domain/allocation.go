package domain

import "github.com/google/uuid"

// BudgetAllocation maps a campaign to its new assigned budget for one
// rebalancing cycle.
type BudgetAllocation map[uuid.UUID]int64

// Total sums all allocations.
func (a BudgetAllocation) Total() int64 {
	var sum int64
	for _, v := range a {
		sum += v
	}
	return sum
}

// RebalanceResult describes one rebalancing cycle.
type RebalanceResult struct {
	Pool       int64
	Previous   BudgetAllocation
	Allocation BudgetAllocation
	Scores     map[uuid.UUID]float64
	Iterations int
	// Applied is false when the cycle found nothing to rebalance or every
	// change stayed under the threshold.
	Applied bool
}
