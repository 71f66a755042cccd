package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-engine/internal/core/domain"
)

// ScheduleStore implements port.ScheduleStore. The partial unique index
// schedule_entries_pending_slot enforces one pending entry per campaign and
// date; transitions are conditional updates on the expected status.
type ScheduleStore struct {
	pool *pgxpool.Pool
}

func NewScheduleStore(pool *pgxpool.Pool) *ScheduleStore {
	return &ScheduleStore{pool: pool}
}

const entryColumns = `id, campaign_id, scheduled_time, status, recurring, retry_of, reason, attempts, retryable, executed_at, created_at, updated_at`

const entryOrder = ` ORDER BY scheduled_time, campaign_id, id`

func scanEntry(row pgx.CollectableRow) (domain.ScheduleEntry, error) {
	var (
		e      domain.ScheduleEntry
		status string
	)
	err := row.Scan(
		&e.ID,
		&e.CampaignID,
		&e.ScheduledTime,
		&status,
		&e.Recurring,
		&e.RetryOf,
		&e.Reason,
		&e.Attempts,
		&e.Retryable,
		&e.ExecutedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	e.Status = domain.ScheduleStatus(status)
	e.ScheduledTime = e.ScheduledTime.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	if e.ExecutedAt != nil {
		t := e.ExecutedAt.UTC()
		e.ExecutedAt = &t
	}
	return e, err
}

func (s *ScheduleStore) Create(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleEntry, error) {
	at := req.ScheduledTime.UTC()
	rows, err := s.pool.Query(ctx, `INSERT INTO schedule_entries
    (id, campaign_id, scheduled_time, due_date, status, recurring, retry_of)
VALUES ($1, $2, $3, $4, 'pending', $5, $6)
RETURNING `+entryColumns,
		uuid.New(), req.CampaignID, at, domain.DateOf(at), req.Recurring, req.RetryOf)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	e, err := pgx.CollectExactlyOneRow(rows, scanEntry)
	switch code, constraint := pgCode(err); {
	case code == uniqueViolation && constraint == pendingSlotIndex:
		return domain.ScheduleEntry{}, domain.NewDuplicateScheduleError(req.CampaignID, at)
	case code == foreignKeyViolation:
		return domain.ScheduleEntry{}, domain.NewCampaignNotFoundError(req.CampaignID)
	}
	return e, err
}

func (s *ScheduleStore) Get(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+entryColumns+` FROM schedule_entries WHERE id = $1`, id)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	e, err := pgx.CollectExactlyOneRow(rows, scanEntry)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ScheduleEntry{}, domain.ErrScheduleNotFound
	}
	return e, err
}

func (s *ScheduleStore) ListDue(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error) {
	return s.list(ctx, `SELECT `+entryColumns+` FROM schedule_entries
WHERE status = 'pending' AND due_date <= $1`+entryOrder, domain.DateOf(date))
}

func (s *ScheduleStore) ListRange(ctx context.Context, from, to time.Time, statuses ...domain.ScheduleStatus) ([]domain.ScheduleEntry, error) {
	var filter []string
	for _, st := range statuses {
		filter = append(filter, string(st))
	}
	return s.list(ctx, `SELECT `+entryColumns+` FROM schedule_entries
WHERE scheduled_time >= $1 AND scheduled_time < $2
  AND ($3::text[] IS NULL OR status = ANY($3))`+entryOrder, from.UTC(), to.UTC(), filter)
}

func (s *ScheduleStore) ListRetryable(ctx context.Context, since time.Time) ([]domain.ScheduleEntry, error) {
	return s.list(ctx, `SELECT `+entryColumns+` FROM schedule_entries e
WHERE e.status = 'failed' AND e.retryable AND e.retry_of IS NULL
  AND e.scheduled_time >= $1
  AND NOT EXISTS (SELECT 1 FROM schedule_entries r WHERE r.retry_of = e.id)`+entryOrder, since.UTC())
}

func (s *ScheduleStore) list(ctx context.Context, query string, args ...any) ([]domain.ScheduleEntry, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanEntry)
}

func (s *ScheduleStore) MarkExecuting(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error) {
	return s.transition(ctx, id, domain.SchedulePending, domain.ScheduleExecuting, nil)
}

func (s *ScheduleStore) MarkCompleted(ctx context.Context, id uuid.UUID, out domain.Outcome) (domain.ScheduleEntry, error) {
	return s.transition(ctx, id, domain.ScheduleExecuting, domain.ScheduleCompleted, &out)
}

func (s *ScheduleStore) MarkFailed(ctx context.Context, id uuid.UUID, out domain.Outcome) (domain.ScheduleEntry, error) {
	return s.transition(ctx, id, domain.ScheduleExecuting, domain.ScheduleFailed, &out)
}

func (s *ScheduleStore) Cancel(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error) {
	return s.transition(ctx, id, domain.SchedulePending, domain.ScheduleCancelled, nil)
}

func (s *ScheduleStore) Purge(ctx context.Context, before time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM schedule_entries
WHERE status IN ('completed', 'failed', 'cancelled') AND scheduled_time < $1`, before.UTC())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// transition is a compare-and-set on status. When no row matches, the
// current status decides between not found and an invalid transition.
func (s *ScheduleStore) transition(ctx context.Context, id uuid.UUID, from, to domain.ScheduleStatus, out *domain.Outcome) (domain.ScheduleEntry, error) {
	if !domain.CanTransition(from, to) {
		return domain.ScheduleEntry{}, domain.NewInvalidStateTransitionError(id, from, to)
	}

	var (
		rows pgx.Rows
		err  error
	)
	if out == nil {
		rows, err = s.pool.Query(ctx, `UPDATE schedule_entries
SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2
RETURNING `+entryColumns, id, string(from), string(to))
	} else {
		rows, err = s.pool.Query(ctx, `UPDATE schedule_entries
SET status = $3, reason = $4, attempts = $5, retryable = $6, executed_at = now(), updated_at = now()
WHERE id = $1 AND status = $2
RETURNING `+entryColumns, id, string(from), string(to), out.Reason, out.Attempts, out.Retryable)
	}
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	e, err := pgx.CollectExactlyOneRow(rows, scanEntry)
	if !errors.Is(err, pgx.ErrNoRows) {
		return e, err
	}

	var current string
	err = s.pool.QueryRow(ctx, `SELECT status FROM schedule_entries WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ScheduleEntry{}, domain.ErrScheduleNotFound
	}
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	return domain.ScheduleEntry{}, domain.NewInvalidStateTransitionError(id, domain.ScheduleStatus(current), to)
}
