package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-engine/internal/core/domain"
)

func TestScoringPolicies(t *testing.T) {
	tests := []struct {
		name     string
		policy   string
		snapshot domain.MetricSnapshot
		want     float64
		ok       bool
	}{
		{
			name:     "conversions per dollar",
			policy:   PolicyConversionsPerDollar,
			snapshot: domain.MetricSnapshot{Conversions: 10, Spend: 1000},
			want:     1,
			ok:       true,
		},
		{
			name:     "conversions per dollar without spend",
			policy:   PolicyConversionsPerDollar,
			snapshot: domain.MetricSnapshot{Conversions: 10, Impressions: 500},
		},
		{
			name:     "weighted",
			policy:   PolicyWeighted,
			snapshot: domain.MetricSnapshot{Impressions: 1000, Clicks: 50, Conversions: 50, Spend: 10000, Revenue: 20000},
			want:     16.5,
			ok:       true,
		},
		{
			name:     "weighted revenue from order value",
			policy:   PolicyWeighted,
			snapshot: domain.MetricSnapshot{Impressions: 1000, Clicks: 50, Conversions: 50, Spend: 10000},
			want:     16.5,
			ok:       true,
		},
		{
			name:     "weighted components are capped",
			policy:   PolicyWeighted,
			snapshot: domain.MetricSnapshot{Impressions: 100, Clicks: 90, Conversions: 5000, Spend: 100, Revenue: 1_000_000},
			want:     100,
			ok:       true,
		},
		{
			name:     "weighted without history",
			policy:   PolicyWeighted,
			snapshot: domain.MetricSnapshot{},
		},
		{
			name:     "ctr",
			policy:   PolicyCTR,
			snapshot: domain.MetricSnapshot{Impressions: 1000, Clicks: 50},
			want:     5,
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := NewScoringPolicy(tt.policy, 400)
			require.NoError(t, err)

			got, ok := policy.Score(tt.snapshot)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNewScoringPolicy(t *testing.T) {
	policy, err := NewScoringPolicy("", 0)
	require.NoError(t, err)
	assert.IsType(t, ConversionsPerDollar{}, policy)

	_, err = NewScoringPolicy("roas", 0)
	assert.ErrorContains(t, err, "unknown scoring policy")
}
