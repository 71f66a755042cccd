package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"campaign-engine/internal/core/domain"
)

// ScheduleStore implements port.ScheduleStore in memory. Pending entries are
// indexed by campaign and date to enforce one pending entry per slot.
type ScheduleStore struct {
	mutex   sync.RWMutex
	entries map[uuid.UUID]domain.ScheduleEntry
	pending map[slot]uuid.UUID
	now     func() time.Time
}

type slot struct {
	campaignID uuid.UUID
	date       string
}

func slotOf(campaignID uuid.UUID, t time.Time) slot {
	return slot{campaignID: campaignID, date: domain.DateOf(t).Format(time.DateOnly)}
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{
		entries: make(map[uuid.UUID]domain.ScheduleEntry),
		pending: make(map[slot]uuid.UUID),
		now:     time.Now,
	}
}

func (s *ScheduleStore) Create(_ context.Context, req domain.ScheduleRequest) (domain.ScheduleEntry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := slotOf(req.CampaignID, req.ScheduledTime)
	if _, ok := s.pending[key]; ok {
		return domain.ScheduleEntry{}, domain.NewDuplicateScheduleError(req.CampaignID, req.ScheduledTime)
	}
	now := s.now().UTC()
	e := domain.ScheduleEntry{
		ID:            uuid.New(),
		CampaignID:    req.CampaignID,
		ScheduledTime: req.ScheduledTime.UTC(),
		Status:        domain.SchedulePending,
		Recurring:     req.Recurring,
		RetryOf:       req.RetryOf,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.entries[e.ID] = e
	s.pending[key] = e.ID
	return e, nil
}

func (s *ScheduleStore) Get(_ context.Context, id uuid.UUID) (domain.ScheduleEntry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return domain.ScheduleEntry{}, domain.ErrScheduleNotFound
	}
	return e, nil
}

func (s *ScheduleStore) ListDue(_ context.Context, date time.Time) ([]domain.ScheduleEntry, error) {
	day := domain.DateOf(date)
	return s.collect(func(e domain.ScheduleEntry) bool {
		return e.Status == domain.SchedulePending && !e.DueDate().After(day)
	}), nil
}

func (s *ScheduleStore) ListRange(_ context.Context, from, to time.Time, statuses ...domain.ScheduleStatus) ([]domain.ScheduleEntry, error) {
	return s.collect(func(e domain.ScheduleEntry) bool {
		if e.ScheduledTime.Before(from) || !e.ScheduledTime.Before(to) {
			return false
		}
		return len(statuses) == 0 || slices.Contains(statuses, e.Status)
	}), nil
}

func (s *ScheduleStore) ListRetryable(_ context.Context, since time.Time) ([]domain.ScheduleEntry, error) {
	s.mutex.RLock()
	retried := make(map[uuid.UUID]bool)
	for _, e := range s.entries {
		if e.RetryOf != nil {
			retried[*e.RetryOf] = true
		}
	}
	s.mutex.RUnlock()

	return s.collect(func(e domain.ScheduleEntry) bool {
		return e.Status == domain.ScheduleFailed && e.Retryable && e.RetryOf == nil &&
			!e.ScheduledTime.Before(since) && !retried[e.ID]
	}), nil
}

func (s *ScheduleStore) MarkExecuting(_ context.Context, id uuid.UUID) (domain.ScheduleEntry, error) {
	return s.transition(id, domain.SchedulePending, domain.ScheduleExecuting, nil)
}

func (s *ScheduleStore) MarkCompleted(_ context.Context, id uuid.UUID, out domain.Outcome) (domain.ScheduleEntry, error) {
	return s.transition(id, domain.ScheduleExecuting, domain.ScheduleCompleted, &out)
}

func (s *ScheduleStore) MarkFailed(_ context.Context, id uuid.UUID, out domain.Outcome) (domain.ScheduleEntry, error) {
	return s.transition(id, domain.ScheduleExecuting, domain.ScheduleFailed, &out)
}

func (s *ScheduleStore) Cancel(_ context.Context, id uuid.UUID) (domain.ScheduleEntry, error) {
	return s.transition(id, domain.SchedulePending, domain.ScheduleCancelled, nil)
}

func (s *ScheduleStore) Purge(_ context.Context, before time.Time) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var n int64
	for id, e := range s.entries {
		if e.Status.Terminal() && e.ScheduledTime.Before(before) {
			delete(s.entries, id)
			n++
		}
	}
	return n, nil
}

// transition applies from -> to only if the stored status equals from.
func (s *ScheduleStore) transition(id uuid.UUID, from, to domain.ScheduleStatus, out *domain.Outcome) (domain.ScheduleEntry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return domain.ScheduleEntry{}, domain.ErrScheduleNotFound
	}
	if e.Status != from || !domain.CanTransition(from, to) {
		return domain.ScheduleEntry{}, domain.NewInvalidStateTransitionError(id, e.Status, to)
	}
	if from == domain.SchedulePending {
		delete(s.pending, slotOf(e.CampaignID, e.ScheduledTime))
	}
	now := s.now().UTC()
	e.Status = to
	e.UpdatedAt = now
	if out != nil {
		e.Reason = out.Reason
		e.Attempts = out.Attempts
		e.Retryable = out.Retryable
		e.ExecutedAt = &now
	}
	s.entries[id] = e
	return e, nil
}

func (s *ScheduleStore) collect(keep func(domain.ScheduleEntry) bool) []domain.ScheduleEntry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]domain.ScheduleEntry, 0)
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	SortEntries(out)
	return out
}

// SortEntries orders entries by scheduled time, then campaign id, then entry
// id.
func SortEntries(entries []domain.ScheduleEntry) {
	slices.SortFunc(entries, func(a, b domain.ScheduleEntry) int {
		if c := a.ScheduledTime.Compare(b.ScheduledTime); c != 0 {
			return c
		}
		if c := bytes.Compare(a.CampaignID[:], b.CampaignID[:]); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
}
