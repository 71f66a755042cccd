package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-engine/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, name, channel, status, assigned_budget, min_budget, frequency_days, segment_id, brief, created_at, updated_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c               domain.Campaign
		channel, status string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&channel,
		&status,
		&c.AssignedBudget,
		&c.MinBudget,
		&c.FrequencyDays,
		&c.SegmentID,
		&c.Brief,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	c.Channel = domain.Channel(channel)
	c.Status = domain.CampaignStatus(status)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, err
}

func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.NewCampaignNotFoundError(id)
	}
	return c, err
}

func (r *CampaignRepository) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	var statuses []string
	for _, s := range filter.Statuses {
		statuses = append(statuses, string(s))
	}
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
WHERE ($1::text[] IS NULL OR status = ANY($1))
  AND ($2 = '' OR channel = $2)
ORDER BY id`, statuses, string(filter.Channel))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// Create inserts a new campaign. It backs seeding and the admin API.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if !c.Channel.Valid() {
		return domain.Campaign{}, fmt.Errorf("campaign %s: unknown channel %q", c.ID, c.Channel)
	}
	if c.Status == "" {
		c.Status = domain.CampaignDraft
	}
	now := time.Now().UTC()
	rows, err := r.pool.Query(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$10)
RETURNING `+campaignColumns,
		c.ID, c.Name, string(c.Channel), string(c.Status), c.AssignedBudget, c.MinBudget, c.FrequencyDays, c.SegmentID, c.Brief, now)
	if err != nil {
		return domain.Campaign{}, err
	}
	return pgx.CollectExactlyOneRow(rows, scanCampaign)
}

func (r *CampaignRepository) Update(ctx context.Context, id uuid.UUID, upd domain.CampaignUpdate) (domain.Campaign, error) {
	var status *string
	if upd.Status != nil {
		s := string(*upd.Status)
		status = &s
	}
	rows, err := r.pool.Query(ctx, `UPDATE campaigns
SET status = COALESCE($2, status),
    assigned_budget = COALESCE($3, assigned_budget),
    updated_at = now()
WHERE id = $1
RETURNING `+campaignColumns, id, status, upd.AssignedBudget)
	if err != nil {
		return domain.Campaign{}, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.NewCampaignNotFoundError(id)
	}
	return c, err
}

// UpdateBudgets writes the whole allocation in one serializable transaction.
// Rows are locked in id order so concurrent writers cannot deadlock.
func (r *CampaignRepository) UpdateBudgets(ctx context.Context, alloc domain.BudgetAllocation) (err error) {
	if len(alloc) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(alloc))
	budgets := make([]int64, 0, len(alloc))
	for id, budget := range alloc {
		if budget < 0 {
			return fmt.Errorf("campaign %s: negative budget %d", id, budget)
		}
		ids = append(ids, id)
		budgets = append(budgets, budget)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	rows, err := tx.Query(ctx, `SELECT id FROM campaigns WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return err
	}
	locked, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return err
	}
	if len(locked) != len(ids) {
		found := make(map[uuid.UUID]bool, len(locked))
		for _, id := range locked {
			found[id] = true
		}
		for _, id := range ids {
			if !found[id] {
				return domain.NewCampaignNotFoundError(id)
			}
		}
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns AS c
SET assigned_budget = v.budget, updated_at = now()
FROM unnest($1::uuid[], $2::bigint[]) AS v(id, budget)
WHERE c.id = v.id`, ids, budgets)
	return err
}
