package memory

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"campaign-engine/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository in memory. A single
// mutex serialises budget writes, which makes UpdateBudgets atomic.
type CampaignRepository struct {
	mutex     sync.RWMutex
	campaigns map[uuid.UUID]domain.Campaign
	now       func() time.Time
}

func NewCampaignRepository(campaigns ...domain.Campaign) *CampaignRepository {
	r := &CampaignRepository{
		campaigns: make(map[uuid.UUID]domain.Campaign, len(campaigns)),
		now:       time.Now,
	}
	for _, c := range campaigns {
		r.campaigns[c.ID] = c
	}
	return r
}

// Save inserts or replaces a campaign. It is used for seeding and tests.
func (r *CampaignRepository) Save(_ context.Context, c domain.Campaign) (domain.Campaign, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if !c.Channel.Valid() {
		return domain.Campaign{}, fmt.Errorf("campaign %s: unknown channel %q", c.ID, c.Channel)
	}
	now := r.now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.campaigns[c.ID] = c
	return c, nil
}

func (r *CampaignRepository) Get(_ context.Context, id uuid.UUID) (domain.Campaign, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	c, ok := r.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.NewCampaignNotFoundError(id)
	}
	return c, nil
}

func (r *CampaignRepository) List(_ context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out, nil
}

func (r *CampaignRepository) Update(_ context.Context, id uuid.UUID, upd domain.CampaignUpdate) (domain.Campaign, error) {
	if upd.AssignedBudget != nil && *upd.AssignedBudget < 0 {
		return domain.Campaign{}, fmt.Errorf("campaign %s: negative budget %d", id, *upd.AssignedBudget)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	c, ok := r.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.NewCampaignNotFoundError(id)
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.AssignedBudget != nil {
		c.AssignedBudget = *upd.AssignedBudget
	}
	c.UpdatedAt = r.now().UTC()
	r.campaigns[id] = c
	return c, nil
}

func (r *CampaignRepository) UpdateBudgets(_ context.Context, alloc domain.BudgetAllocation) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	// validate everything before touching any campaign
	for id, budget := range alloc {
		if _, ok := r.campaigns[id]; !ok {
			return domain.NewCampaignNotFoundError(id)
		}
		if budget < 0 {
			return fmt.Errorf("campaign %s: negative budget %d", id, budget)
		}
	}
	now := r.now().UTC()
	for id, budget := range alloc {
		c := r.campaigns[id]
		c.AssignedBudget = budget
		c.UpdatedAt = now
		r.campaigns[id] = c
	}
	return nil
}
