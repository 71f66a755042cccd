package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"campaign-engine/internal/core/domain"
)

// MetricsStore keeps raw metric observations per campaign and aggregates them
// on read. It implements both port.MetricsSource and port.MetricsRecorder.
type MetricsStore struct {
	mutex sync.RWMutex
	data  map[uuid.UUID][]domain.MetricSnapshot
}

func NewMetricsStore() *MetricsStore {
	return &MetricsStore{data: make(map[uuid.UUID][]domain.MetricSnapshot)}
}

// Record stores one observation. Its Window.From is the observation time.
func (s *MetricsStore) Record(_ context.Context, snapshot domain.MetricSnapshot) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[snapshot.CampaignID] = append(s.data[snapshot.CampaignID], snapshot)
	return nil
}

func (s *MetricsStore) GetMetrics(_ context.Context, campaignIDs []uuid.UUID, window domain.MetricWindow) ([]domain.MetricSnapshot, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]domain.MetricSnapshot, 0, len(campaignIDs))
	for _, id := range campaignIDs {
		agg := domain.MetricSnapshot{CampaignID: id, Window: window}
		found := false
		for _, obs := range s.data[id] {
			if window.Contains(obs.Window.From) {
				agg = agg.Add(obs)
				found = true
			}
		}
		if found {
			out = append(out, agg)
		}
	}
	return out, nil
}
