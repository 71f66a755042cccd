package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
)

// WebhookPublisher posts approved content as JSON to a channel endpoint.
// Requests are rate limited per publisher.
type WebhookPublisher struct {
	client  *http.Client
	limiter *rate.Limiter
	url     string
	apiKey  string
	now     func() time.Time
}

func NewWebhookPublisher(endpoint url.URL, cfg configs.Channel) *WebhookPublisher {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	return &WebhookPublisher{
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, max(cfg.RateBurst, 1)),
		url:     endpoint.String(),
		apiKey:  cfg.APIKey,
		now:     time.Now,
	}
}

// NewWebhookPublishers builds one publisher per channel from the configured
// endpoints.
func NewWebhookPublishers(cfg configs.Channel) map[domain.Channel]*WebhookPublisher {
	return map[domain.Channel]*WebhookPublisher{
		domain.ChannelSocial: NewWebhookPublisher(cfg.SocialURL, cfg),
		domain.ChannelEmail:  NewWebhookPublisher(cfg.EmailURL, cfg),
		domain.ChannelSearch: NewWebhookPublisher(cfg.SearchURL, cfg),
	}
}

type webhookPayload struct {
	CampaignID string    `json:"campaign_id"`
	EntryID    string    `json:"entry_id"`
	Channel    string    `json:"channel"`
	Date       string    `json:"date"`
	Budget     int64     `json:"budget"`
	Headline   string    `json:"headline,omitempty"`
	Body       string    `json:"body"`
	Tags       []string  `json:"tags,omitempty"`
	ApprovedAt time.Time `json:"approved_at"`
}

type webhookResponse struct {
	ID string `json:"id"`
}

func newPayload(c domain.ApprovedContent) webhookPayload {
	return webhookPayload{
		CampaignID: c.CampaignID.String(),
		EntryID:    c.EntryID.String(),
		Channel:    string(c.Channel),
		Date:       c.Date.Format(time.DateOnly),
		Budget:     c.Budget,
		Headline:   c.Headline,
		Body:       c.Body,
		Tags:       c.Tags,
		ApprovedAt: c.ApprovedAt,
	}
}

func (p *WebhookPublisher) Publish(ctx context.Context, content domain.ApprovedContent) (domain.PublishReceipt, error) {
	fail := func(err error) (domain.PublishReceipt, error) {
		return domain.PublishReceipt{}, domain.NewPublishError(content.CampaignID, content.Channel, err)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return fail(fmt.Errorf("rate limit: %w", err))
	}

	body, err := json.Marshal(newPayload(content))
	if err != nil {
		return fail(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fail(err)
	}
	req.Header.Set("Content-Type", "application/json")
	// lets the receiver drop duplicate deliveries after a retry
	req.Header.Set("Idempotency-Key", content.EntryID.String())
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fail(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(msg)))
	}

	var out webhookResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return fail(fmt.Errorf("decode response: %w", err))
	}
	if out.ID == "" {
		out.ID = content.EntryID.String()
	}
	return domain.PublishReceipt{
		Channel:     content.Channel,
		ExternalID:  out.ID,
		PublishedAt: p.now().UTC(),
	}, nil
}
