package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campaign-engine/internal/core/domain"
)

// ScheduleStore keeps durable bookkeeping of schedule entries. Transitions are
// compare-and-swap: they apply only when the stored status matches the
// expected prior status and fail with *domain.InvalidStateTransitionError
// otherwise.
type ScheduleStore interface {
	// Create stores a pending entry. It fails with
	// *domain.DuplicateScheduleError when the campaign already has a pending
	// entry on the same date.
	Create(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleEntry, error)
	// Get returns an entry or domain.ErrScheduleNotFound.
	Get(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error)
	// ListDue returns pending entries dated on or before date, ordered by
	// scheduled time with campaign id as tie-break.
	ListDue(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error)
	// ListRange returns entries with scheduled time in [from, to), optionally
	// restricted to the given statuses, in the same order as ListDue.
	ListRange(ctx context.Context, from, to time.Time, statuses ...domain.ScheduleStatus) ([]domain.ScheduleEntry, error)
	// ListRetryable returns retryable failed entries scheduled at or after
	// since. Entries that are themselves retries, or already have a retry,
	// are excluded.
	ListRetryable(ctx context.Context, since time.Time) ([]domain.ScheduleEntry, error)

	MarkExecuting(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, out domain.Outcome) (domain.ScheduleEntry, error)
	MarkFailed(ctx context.Context, id uuid.UUID, out domain.Outcome) (domain.ScheduleEntry, error)
	// Cancel is only legal while the entry is pending.
	Cancel(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error)

	// Purge deletes terminal entries scheduled before the given time and
	// returns how many were removed.
	Purge(ctx context.Context, before time.Time) (int64, error)
}
