package usecase

import (
	"fmt"
	"math"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

const (
	PolicyConversionsPerDollar = "conversions_per_dollar"
	PolicyWeighted             = "weighted"
	PolicyCTR                  = "ctr"
)

// NewScoringPolicy returns the policy registered under name.
func NewScoringPolicy(name string, avgOrderValue int64) (port.ScoringPolicy, error) {
	switch name {
	case PolicyConversionsPerDollar, "":
		return ConversionsPerDollar{}, nil
	case PolicyWeighted:
		return WeightedPolicy{AvgOrderValue: avgOrderValue}, nil
	case PolicyCTR:
		return CTRPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring policy %q", name)
	}
}

// ConversionsPerDollar scores conversions per 100 minor units spent.
type ConversionsPerDollar struct{}

func (ConversionsPerDollar) Score(m domain.MetricSnapshot) (float64, bool) {
	if m.Spend <= 0 {
		return 0, false
	}
	return float64(m.Conversions) / (float64(m.Spend) / 100), true
}

// WeightedPolicy blends ROI, conversions and CTR as 0.5/0.3/0.2, each
// component capped at 100. Revenue falls back to conversions times
// AvgOrderValue when the source reports none.
type WeightedPolicy struct {
	AvgOrderValue int64
}

func (p WeightedPolicy) Score(m domain.MetricSnapshot) (float64, bool) {
	if !m.HasHistory() {
		return 0, false
	}
	if m.Revenue == 0 {
		m.Revenue = m.Conversions * p.AvgOrderValue
	}
	roi := clampScore(m.ROI() * 10)
	conversions := clampScore(float64(m.Conversions) / 10)
	ctr := clampScore(m.CTR() * 100 * 10)
	return roi*0.5 + conversions*0.3 + ctr*0.2, true
}

// CTRPolicy scores click-through rate in percent.
type CTRPolicy struct{}

func (CTRPolicy) Score(m domain.MetricSnapshot) (float64, bool) {
	if m.Impressions == 0 {
		return 0, false
	}
	return m.CTR() * 100, true
}

func clampScore(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}
