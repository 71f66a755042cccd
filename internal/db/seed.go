package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-engine/internal/core/domain"
)

// DemoCampaigns returns a small active portfolio across all channels with
// the pool split evenly.
func DemoCampaigns(pool int64, now time.Time) []domain.Campaign {
	demo := []struct {
		name      string
		channel   domain.Channel
		frequency int
		brief     string
	}{
		{"Radiant Glow Serum", domain.ChannelSocial, 3, "Vitamin C serum for a brighter morning routine"},
		{"Radiant Glow Serum", domain.ChannelSearch, 1, "Vitamin C serum, dermatologist tested"},
		{"Pure Cleanse Face Wash", domain.ChannelEmail, 7, "Gentle daily cleanser for sensitive skin"},
		{"Pure Cleanse Face Wash", domain.ChannelSocial, 5, "Fragrance-free cleanser, now in a refill pack"},
		{"Spring Skincare Bundle", domain.ChannelEmail, 14, "Serum and cleanser bundle at a seasonal price"},
	}

	out := make([]domain.Campaign, len(demo))
	share := pool / int64(len(demo))
	for i, d := range demo {
		out[i] = domain.Campaign{
			ID:             uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("demo-%d-%s-%s", i, d.channel, d.name))),
			Name:           d.name,
			Channel:        d.channel,
			Status:         domain.CampaignActive,
			AssignedBudget: share,
			FrequencyDays:  d.frequency,
			Brief:          d.brief,
			CreatedAt:      now.UTC(),
			UpdatedAt:      now.UTC(),
		}
	}
	out[0].AssignedBudget += pool - share*int64(len(demo))
	return out
}

// Seed inserts the demo campaigns when the campaigns table is empty.
func Seed(ctx context.Context, db *pgxpool.Pool, campaigns []domain.Campaign) (int, error) {
	var existing int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&existing); err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	inserted := 0
	for _, c := range campaigns {
		tag, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, channel, status, assigned_budget, min_budget, frequency_days, segment_id, brief, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) ON CONFLICT DO NOTHING`,
			c.ID, c.Name, string(c.Channel), string(c.Status), c.AssignedBudget, c.MinBudget, c.FrequencyDays,
			c.SegmentID, c.Brief, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return inserted, fmt.Errorf("insert campaign %s: %w", c.Name, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
