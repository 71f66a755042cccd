package channel

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

// rates are the mean funnel rates of a channel.
type rates struct {
	ctr        float64 // clicks per impression
	conversion float64 // conversions per impression
}

var channelRates = map[domain.Channel]rates{
	domain.ChannelSocial: {ctr: 0.03, conversion: 0.01},
	// opens 0.2 times click-through 0.025
	domain.ChannelEmail:  {ctr: 0.2 * 0.025, conversion: 0.015},
	domain.ChannelSearch: {ctr: 0.03, conversion: 0.012},
}

// SimulatedPublisher accepts every publish and records synthetic performance
// for it, so the rebalancer has data without real ad platforms. Each
// campaign gets a stable efficiency factor in [0.9, 1.1).
type SimulatedPublisher struct {
	recorder      port.MetricsRecorder
	avgOrderValue int64

	mu      sync.Mutex
	rng     *rand.Rand
	factors map[uuid.UUID]float64
	now     func() time.Time
}

func NewSimulatedPublisher(recorder port.MetricsRecorder, avgOrderValue int64, seed uint64) *SimulatedPublisher {
	return &SimulatedPublisher{
		recorder:      recorder,
		avgOrderValue: avgOrderValue,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		factors:       make(map[uuid.UUID]float64),
		now:           time.Now,
	}
}

func (p *SimulatedPublisher) Publish(ctx context.Context, content domain.ApprovedContent) (domain.PublishReceipt, error) {
	if err := ctx.Err(); err != nil {
		return domain.PublishReceipt{}, domain.NewPublishError(content.CampaignID, content.Channel, err)
	}

	snapshot := p.simulate(content)
	if err := p.recorder.Record(ctx, snapshot); err != nil {
		return domain.PublishReceipt{}, domain.NewPublishError(content.CampaignID, content.Channel, fmt.Errorf("record metrics: %w", err))
	}
	return domain.PublishReceipt{
		Channel:     content.Channel,
		ExternalID:  "sim-" + content.EntryID.String(),
		PublishedAt: p.now().UTC(),
	}, nil
}

func (p *SimulatedPublisher) simulate(content domain.ApprovedContent) domain.MetricSnapshot {
	r, ok := channelRates[content.Channel]
	if !ok {
		r = rates{ctr: 0.01, conversion: 0.005}
	}

	p.mu.Lock()
	factor, ok := p.factors[content.CampaignID]
	if !ok {
		factor = 0.9 + p.rng.Float64()*0.2
		p.factors[content.CampaignID] = factor
	}
	// 100 to 200 impressions per currency unit spent
	impressions := int64(float64(content.Budget) / 100 * (100 + p.rng.Float64()*100))
	noise := 1 + p.rng.NormFloat64()*0.05
	p.mu.Unlock()

	efficiency := math.Max(factor*noise, 0)
	clicks := int64(float64(impressions) * r.ctr * efficiency)
	conversions := int64(float64(impressions) * r.conversion * efficiency)

	day := domain.DateOf(content.Date)
	return domain.MetricSnapshot{
		CampaignID:  content.CampaignID,
		Window:      domain.MetricWindow{From: day, To: day.AddDate(0, 0, 1)},
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Spend:       content.Budget,
		Revenue:     conversions * p.avgOrderValue,
	}
}
