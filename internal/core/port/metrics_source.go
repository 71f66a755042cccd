package port

import (
	"context"

	"github.com/google/uuid"

	"campaign-engine/internal/core/domain"
)

// MetricsSource returns aggregated performance per campaign. Campaigns
// without data in the window are omitted.
type MetricsSource interface {
	GetMetrics(ctx context.Context, campaignIDs []uuid.UUID, window domain.MetricWindow) ([]domain.MetricSnapshot, error)
}

// MetricsRecorder stores raw performance observations.
type MetricsRecorder interface {
	Record(ctx context.Context, snapshot domain.MetricSnapshot) error
}

// ScoringPolicy turns a snapshot into a non-negative performance score. ok is
// false when the snapshot carries no usable history.
type ScoringPolicy interface {
	Score(snapshot domain.MetricSnapshot) (score float64, ok bool)
}
