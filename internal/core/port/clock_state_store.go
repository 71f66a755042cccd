package port

import (
	"context"
	"time"

	"campaign-engine/internal/core/domain"
)

// ClockStateStore persists the game clock so a restart resumes at the same
// date.
type ClockStateStore interface {
	// Load returns domain.ErrClockStateNotFound when nothing was saved yet.
	Load(ctx context.Context) (domain.GameClockState, error)
	Save(ctx context.Context, state domain.GameClockState) error
}

// GameDate exposes the current logical date.
type GameDate interface {
	CurrentDate() time.Time
}
