package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-engine/internal/core/domain"
)

// MetricsStore keeps raw observations in campaign_metrics and aggregates them
// per campaign on read.
type MetricsStore struct {
	pool *pgxpool.Pool
}

func NewMetricsStore(pool *pgxpool.Pool) *MetricsStore {
	return &MetricsStore{pool: pool}
}

// Record stores one observation at snapshot.Window.From.
func (s *MetricsStore) Record(ctx context.Context, m domain.MetricSnapshot) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO campaign_metrics
    (campaign_id, observed_at, impressions, clicks, conversions, spend, revenue)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.CampaignID, m.Window.From.UTC(), m.Impressions, m.Clicks, m.Conversions, m.Spend, m.Revenue)
	return err
}

func (s *MetricsStore) GetMetrics(ctx context.Context, campaignIDs []uuid.UUID, window domain.MetricWindow) ([]domain.MetricSnapshot, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, `SELECT campaign_id,
       sum(impressions)::bigint, sum(clicks)::bigint, sum(conversions)::bigint,
       sum(spend)::bigint, sum(revenue)::bigint
FROM campaign_metrics
WHERE campaign_id = ANY($1) AND observed_at >= $2 AND observed_at < $3
GROUP BY campaign_id
ORDER BY campaign_id`, campaignIDs, window.From.UTC(), window.To.UTC())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetricSnapshot, error) {
		m := domain.MetricSnapshot{Window: window}
		err := row.Scan(&m.CampaignID, &m.Impressions, &m.Clicks, &m.Conversions, &m.Spend, &m.Revenue)
		return m, err
	})
}
