package channel

import (
	"context"
	"errors"
	"fmt"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

// Channel couples a content generator and a publisher for one delivery
// channel. Drafts are normalised to the channel's format limits.
type Channel struct {
	name      domain.Channel
	generator port.ContentGenerator
	publisher port.Publisher
}

func New(name domain.Channel, generator port.ContentGenerator, publisher port.Publisher) *Channel {
	return &Channel{name: name, generator: generator, publisher: publisher}
}

// NewRegistry builds one Channel per supported channel. Every channel must
// have a publisher.
func NewRegistry(generator port.ContentGenerator, publishers map[domain.Channel]port.Publisher) (map[domain.Channel]port.Channel, error) {
	registry := make(map[domain.Channel]port.Channel, len(domain.Channels))
	for _, name := range domain.Channels {
		p, ok := publishers[name]
		if !ok || p == nil {
			return nil, fmt.Errorf("no publisher for channel %q", name)
		}
		registry[name] = New(name, generator, p)
	}
	return registry, nil
}

func (c *Channel) Generate(ctx context.Context, campaign domain.Campaign, entry domain.ScheduleEntry) (domain.DraftContent, error) {
	draft, err := c.generator.Generate(ctx, campaign, c.name)
	if err != nil {
		var genErr *domain.ContentGenerationError
		if errors.As(err, &genErr) {
			return domain.DraftContent{}, err
		}
		return domain.DraftContent{}, domain.NewContentGenerationError(campaign.ID, c.name, err)
	}
	if draft.Body == "" {
		return domain.DraftContent{}, domain.NewContentGenerationError(campaign.ID, c.name, errors.New("empty body"))
	}

	draft.CampaignID = campaign.ID
	draft.EntryID = entry.ID
	draft.Channel = c.name
	draft.Date = entry.DueDate()
	draft.Budget = campaign.AssignedBudget
	return Format(draft), nil
}

func (c *Channel) Publish(ctx context.Context, content domain.ApprovedContent) (domain.PublishReceipt, error) {
	receipt, err := c.publisher.Publish(ctx, content)
	if err != nil {
		return domain.PublishReceipt{}, err
	}
	receipt.Channel = c.name
	return receipt, nil
}
