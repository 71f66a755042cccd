package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/metrics"
)

// RebalancerDeps are the collaborators of the Rebalancer.
type RebalancerDeps struct {
	Campaigns port.CampaignRepository
	Metrics   port.MetricsSource
	Policy    port.ScoringPolicy
	Date      port.GameDate
	Notifier  port.Notifier
}

// Rebalancer redistributes a fixed budget pool across active campaigns by
// performance. Cycles are serialised; the persisted update is all-or-nothing.
type Rebalancer struct {
	deps    RebalancerDeps
	cfg     configs.Rebalancer
	logger  *slog.Logger
	metrics *metrics.Metrics
	mu      sync.Mutex
}

func NewRebalancer(deps RebalancerDeps, cfg configs.Rebalancer, logger *slog.Logger, m *metrics.Metrics) *Rebalancer {
	return &Rebalancer{
		deps:    deps,
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "rebalancer")),
		metrics: m,
	}
}

// Rebalance runs one cycle. On *domain.BudgetInfeasibleError nothing is
// persisted and the operator is notified.
func (r *Rebalancer) Rebalance(ctx context.Context) (domain.RebalanceResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := domain.RebalanceResult{Pool: r.cfg.PoolBudget}

	campaigns, err := r.deps.Campaigns.List(ctx, domain.CampaignFilter{Statuses: []domain.CampaignStatus{domain.CampaignActive}})
	if err != nil {
		r.metrics.RecordRebalance("error")
		return result, fmt.Errorf("list active campaigns: %w", err)
	}
	result.Previous = make(domain.BudgetAllocation, len(campaigns))
	for _, c := range campaigns {
		result.Previous[c.ID] = c.AssignedBudget
	}
	if len(campaigns) == 0 {
		r.metrics.RecordRebalance("skipped")
		return result, nil
	}

	scores, err := r.score(ctx, campaigns)
	if err != nil {
		r.metrics.RecordRebalance("error")
		return result, err
	}
	result.Scores = scores

	shares := make([]CampaignShare, len(campaigns))
	for i, c := range campaigns {
		minBudget := c.MinBudget
		if minBudget <= 0 {
			minBudget = r.cfg.MinBudget
		}
		shares[i] = CampaignShare{CampaignID: c.ID, Score: scores[c.ID], MinBudget: minBudget}
	}

	alloc, iterations, err := Allocate(r.cfg.PoolBudget, shares, r.cfg.MaxAllocationPercent, r.cfg.MaxIterations)
	result.Iterations = iterations
	if err != nil {
		r.metrics.RecordRebalance("infeasible")
		r.logger.Warn("allocation infeasible, keeping previous budgets", slog.Any("error", err))
		if r.deps.Notifier != nil {
			r.deps.Notifier.Notify(ctx, err, map[string]string{
				"component": "rebalancer",
				"pool":      fmt.Sprint(r.cfg.PoolBudget),
			})
		}
		return result, err
	}
	result.Allocation = alloc

	if !r.significant(result.Previous, alloc) {
		r.metrics.RecordRebalance("below_threshold")
		r.logger.Info("allocation change below threshold", slog.Float64("threshold", r.cfg.Threshold))
		return result, nil
	}

	if err = r.deps.Campaigns.UpdateBudgets(ctx, alloc); err != nil {
		r.metrics.RecordRebalance("error")
		return result, fmt.Errorf("persist allocation: %w", err)
	}
	result.Applied = true
	for id, budget := range alloc {
		r.metrics.RecordBudget(id.String(), budget)
	}
	r.metrics.RecordRebalance("applied")
	r.logger.Info("budgets rebalanced",
		slog.Int("campaigns", len(alloc)),
		slog.Int64("pool", r.cfg.PoolBudget),
		slog.Int("iterations", iterations))
	return result, nil
}

// score applies the policy over the metrics window. Campaigns without history
// receive the mean of the known scores, or 1 when nothing is known.
func (r *Rebalancer) score(ctx context.Context, campaigns []domain.Campaign) (map[uuid.UUID]float64, error) {
	ids := make([]uuid.UUID, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}
	today := domain.DateOf(r.deps.Date.CurrentDate())
	window := domain.MetricWindow{
		From: today.AddDate(0, 0, -max(r.cfg.WindowDays, 1)),
		To:   today.AddDate(0, 0, 1),
	}
	snapshots, err := r.deps.Metrics.GetMetrics(ctx, ids, window)
	if err != nil {
		return nil, fmt.Errorf("get metrics: %w", err)
	}

	scores := make(map[uuid.UUID]float64, len(campaigns))
	var sum float64
	for _, s := range snapshots {
		score, ok := r.deps.Policy.Score(s)
		if !ok {
			continue
		}
		score = math.Max(score, 0)
		scores[s.CampaignID] = score
		sum += score
	}

	baseline := 1.0
	if len(scores) > 0 && sum > 0 {
		baseline = sum / float64(len(scores))
	}
	for _, id := range ids {
		if _, ok := scores[id]; !ok {
			scores[id] = baseline
		}
	}
	return scores, nil
}

// significant reports whether any budget moves by more than the threshold.
func (r *Rebalancer) significant(previous, next domain.BudgetAllocation) bool {
	if r.cfg.Threshold <= 0 {
		return true
	}
	for id, budget := range next {
		prev := previous[id]
		if prev == 0 {
			if budget != 0 {
				return true
			}
			continue
		}
		if math.Abs(float64(budget-prev))/float64(prev) > r.cfg.Threshold {
			return true
		}
	}
	return false
}

// RunCadence returns a clock subscriber that rebalances on every game date
// whose day number since the Unix epoch is a multiple of cadenceDays. The
// schedule depends on the date alone, so it survives restarts.
func (r *Rebalancer) RunCadence(cadenceDays int) DateSubscriber {
	cadence := int64(max(cadenceDays, 1))
	return func(ctx context.Context, date time.Time) error {
		if epochDay(date)%cadence != 0 {
			return nil
		}
		_, err := r.Rebalance(ctx)
		var infeasible *domain.BudgetInfeasibleError
		if errors.As(err, &infeasible) {
			// already reported to the operator
			return nil
		}
		return err
	}
}

func epochDay(date time.Time) int64 {
	d := domain.DateOf(date).Unix() / 86400
	if d < 0 {
		d = -d
	}
	return d
}

// CampaignShare is the allocation input of one campaign.
type CampaignShare struct {
	CampaignID uuid.UUID
	Score      float64
	MinBudget  int64
}

// Allocate splits pool proportionally to score, clamps every share to
// [MinBudget, floor(maxPercent*pool)] and redistributes what clamping frees
// or consumes across the unclamped campaigns. Each iteration pins either the
// over-cap or the under-floor shares, whichever violation is larger in total;
// a pinned share keeps its bound in the final allocation, so a feasible input
// settles within len(shares)+1 iterations. The loop stops at maxIterations and
// then reports the input as infeasible. The result sums to pool exactly.
func Allocate(pool int64, shares []CampaignShare, maxPercent float64, maxIterations int) (domain.BudgetAllocation, int, error) {
	n := len(shares)
	alloc := make(domain.BudgetAllocation, n)
	if n == 0 {
		return alloc, 0, nil
	}
	infeasible := func(format string, args ...any) error {
		return domain.NewBudgetInfeasibleError(pool, n, fmt.Sprintf(format, args...))
	}
	if pool < 0 {
		return nil, 0, infeasible("negative pool")
	}
	if maxIterations <= 0 {
		maxIterations = n + 1
	}

	capBudget := int64(math.Floor(maxPercent*float64(pool) + 1e-9))
	var minSum int64
	for _, s := range shares {
		if s.MinBudget > capBudget {
			return nil, 0, infeasible("min budget %d of campaign %s exceeds cap %d", s.MinBudget, s.CampaignID, capBudget)
		}
		minSum += s.MinBudget
	}
	if minSum > pool {
		return nil, 0, infeasible("min budgets total %d exceed the pool", minSum)
	}
	if capBudget*int64(n) < pool {
		return nil, 0, infeasible("cap %d across %d campaigns cannot absorb the pool", capBudget, n)
	}

	values := make([]float64, n)
	pinned := make([]bool, n)
	remaining := float64(pool)
	upper := float64(capBudget)

	iterations := 0
	for {
		if iterations >= maxIterations {
			return nil, iterations, infeasible("no stable allocation after %d iterations", iterations)
		}
		iterations++

		var free []int
		var total float64
		for i := range shares {
			if !pinned[i] {
				free = append(free, i)
				total += math.Max(shares[i].Score, 0)
			}
		}
		if len(free) == 0 {
			break
		}
		for _, i := range free {
			w := 1 / float64(len(free))
			if total > 0 {
				w = math.Max(shares[i].Score, 0) / total
			}
			values[i] = remaining * w
		}

		var (
			over, under     []int
			excess, deficit float64
		)
		for _, i := range free {
			switch {
			case values[i] > upper:
				over = append(over, i)
				excess += values[i] - upper
			case values[i] < float64(shares[i].MinBudget):
				under = append(under, i)
				deficit += float64(shares[i].MinBudget) - values[i]
			}
		}
		// pin whichever side dominates: if the over-cap excess covers the
		// under-floor deficit the capped shares stay capped in the final
		// allocation, otherwise the floored ones stay floored
		switch {
		case len(over) > 0 && excess >= deficit:
			for _, i := range over {
				values[i], pinned[i] = upper, true
				remaining -= upper
			}
		case len(under) > 0:
			for _, i := range under {
				values[i], pinned[i] = float64(shares[i].MinBudget), true
				remaining -= values[i]
			}
		default:
			return round(pool, shares, fill(pool, shares, values, upper), capBudget), iterations, nil
		}
	}
	return round(pool, shares, fill(pool, shares, values, upper), capBudget), iterations, nil
}

// fill spreads any gap between the pinned values and pool across campaigns
// that still have room within their bounds.
func fill(pool int64, shares []CampaignShare, values []float64, upper float64) []float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	gap := float64(pool) - sum
	if math.Abs(gap) < 1e-6 {
		return values
	}
	room := make([]float64, len(values))
	var totalRoom float64
	for i, v := range values {
		if gap > 0 {
			room[i] = upper - v
		} else {
			room[i] = v - float64(shares[i].MinBudget)
		}
		room[i] = math.Max(room[i], 0)
		totalRoom += room[i]
	}
	if totalRoom == 0 {
		return values
	}
	for i := range values {
		values[i] += gap * room[i] / totalRoom
	}
	return values
}

// round converts values to whole units by largest remainder so the total
// equals pool and every share stays within its bounds.
func round(pool int64, shares []CampaignShare, values []float64, capBudget int64) domain.BudgetAllocation {
	n := len(shares)
	units := make([]int64, n)
	fracs := make([]float64, n)
	var sum int64
	for i, v := range values {
		// remainders are taken against the same tolerant floor as the units,
		// otherwise 4999.9999999999 rounds to 5000 and still ranks first
		floor := math.Floor(v + 1e-9)
		fracs[i] = math.Max(v-floor, 0)
		u := min(max(int64(floor), shares[i].MinBudget), capBudget)
		units[i] = u
		sum += u
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		fa, fb := fracs[a], fracs[b]
		switch {
		case fa > fb:
			return -1
		case fa < fb:
			return 1
		}
		return bytes.Compare(shares[a].CampaignID[:], shares[b].CampaignID[:])
	})

	for rest := pool - sum; rest != 0; {
		moved := false
		for _, i := range order {
			if rest > 0 && units[i] < capBudget {
				units[i]++
				rest--
				moved = true
			} else if rest < 0 && units[i] > shares[i].MinBudget {
				units[i]--
				rest++
				moved = true
			}
			if rest == 0 {
				break
			}
		}
		if !moved {
			break
		}
	}

	alloc := make(domain.BudgetAllocation, n)
	for i, s := range shares {
		alloc[s.CampaignID] = units[i]
	}
	return alloc
}
