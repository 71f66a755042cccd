package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campaign-engine/internal/core/domain"
)

// ClockUseCase controls the game clock.
type ClockUseCase interface {
	State() domain.GameClockState
	Start(ctx context.Context) (domain.GameClockState, error)
	Pause(ctx context.Context) (domain.GameClockState, error)
	SetSpeed(ctx context.Context, speed domain.GameSpeed) (domain.GameClockState, error)
}

// ScheduleUseCase manages schedule entries on behalf of the surrounding
// application.
type ScheduleUseCase interface {
	Create(ctx context.Context, campaignID uuid.UUID, at time.Time) (domain.ScheduleEntry, error)
	Cancel(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error)
	ListDue(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error)
	Upcoming(ctx context.Context, days int) ([]domain.ScheduleEntry, error)
	Calendar(ctx context.Context, year int, month time.Month) (map[string][]domain.ScheduleEntry, error)
	Activate(ctx context.Context, campaignID uuid.UUID) (domain.Campaign, *domain.ScheduleEntry, error)
	Pause(ctx context.Context, campaignID uuid.UUID) (domain.Campaign, error)
}

// ExecutorUseCase runs due entries.
type ExecutorUseCase interface {
	RunNow(ctx context.Context, date time.Time) (domain.ExecutionReport, error)
}

// RebalancerUseCase redistributes the budget pool.
type RebalancerUseCase interface {
	Rebalance(ctx context.Context) (domain.RebalanceResult, error)
}
