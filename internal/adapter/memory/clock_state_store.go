package memory

import (
	"context"
	"sync"

	"campaign-engine/internal/core/domain"
)

// ClockStateStore keeps the game clock state for the lifetime of the process.
type ClockStateStore struct {
	mutex sync.Mutex
	state *domain.GameClockState
}

func NewClockStateStore() *ClockStateStore {
	return &ClockStateStore{}
}

func (s *ClockStateStore) Load(_ context.Context) (domain.GameClockState, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state == nil {
		return domain.GameClockState{}, domain.ErrClockStateNotFound
	}
	return *s.state, nil
}

func (s *ClockStateStore) Save(_ context.Context, state domain.GameClockState) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.state = &state
	return nil
}
