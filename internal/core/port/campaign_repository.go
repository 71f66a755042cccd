package port

import (
	"context"

	"github.com/google/uuid"

	"campaign-engine/internal/core/domain"
)

// CampaignRepository is the CRUD boundary for campaigns. It is an outbound
// port in hexagonal architecture. Implementations must be concurrency-safe
// and serialise budget writes per campaign.
type CampaignRepository interface {
	// Get returns a campaign or *domain.CampaignNotFoundError.
	Get(ctx context.Context, id uuid.UUID) (domain.Campaign, error)
	// List returns campaigns matching the filter ordered by id.
	List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error)
	// Update applies the non-nil fields of upd and returns the result.
	Update(ctx context.Context, id uuid.UUID, upd domain.CampaignUpdate) (domain.Campaign, error)
	// UpdateBudgets sets assigned_budget for every campaign in alloc. Either
	// all campaigns are updated or none are.
	UpdateBudgets(ctx context.Context, alloc domain.BudgetAllocation) error
}
