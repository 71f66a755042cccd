package channel

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"text/template"

	"campaign-engine/internal/core/domain"
)

type variant struct {
	headline *template.Template
	body     *template.Template
}

var templates = map[domain.Channel][]variant{
	domain.ChannelSocial: {
		mustVariant("{{.Product}}", "Discover the amazing {{.Product}}! {{.Theme}}\n\nLimited time offer!"),
		mustVariant("{{.Product}}", "Transform your day with {{.Product}}.\n\n{{.Theme}}\n\nShop now."),
		mustVariant("{{.Product}}", "Why everyone's talking about {{.Product}}.\n\n{{.Theme}}\n\nLearn more!"),
	},
	domain.ChannelEmail: {
		mustVariant("Don't miss out on {{.Product}}", "{{.Product}}\n\n{{.Theme}}\n\nShop now at {{.URL}}"),
		mustVariant("Your exclusive {{.Product}} offer inside", "{{.Theme}}\n\nExperience the difference with {{.Product}}.\n\n{{.URL}}"),
		mustVariant("{{.Product}}: {{.Theme}}", "{{.Product}}\n\n{{.Theme}}\n\nShop now at {{.URL}}"),
	},
	domain.ChannelSearch: {
		mustVariant("{{.Product}} - Official Site", "Discover {{.Product}}. {{.Theme}}. Order today!"),
		mustVariant("Best {{.Product}} Deals", "Shop {{.Product}} now. {{.Theme}}. Limited time offer!"),
		mustVariant("Save on {{.Product}} Today", "Get the best {{.Product}} deals. {{.Theme}}."),
	},
}

func mustVariant(headline, body string) variant {
	return variant{
		headline: template.Must(template.New("headline").Parse(headline)),
		body:     template.Must(template.New("body").Parse(body)),
	}
}

type templateData struct {
	Product string
	Theme   string
	URL     string
}

// TemplateGenerator renders drafts from fixed per-channel templates. It is
// the offline default when no LLM is configured.
type TemplateGenerator struct {
	// pick chooses a variant index in [0, n).
	pick func(n int) int
}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{pick: rand.IntN}
}

func (g *TemplateGenerator) Generate(_ context.Context, campaign domain.Campaign, ch domain.Channel) (domain.DraftContent, error) {
	variants := templates[ch]
	if len(variants) == 0 {
		return domain.DraftContent{}, domain.NewContentGenerationError(campaign.ID, ch, fmt.Errorf("no templates for channel %q", ch))
	}
	v := variants[g.pick(len(variants))]

	data := templateData{
		Product: campaign.Name,
		Theme:   strings.TrimSpace(campaign.Brief),
		URL:     "https://example.com/" + slug(campaign.Name),
	}
	if data.Theme == "" {
		data.Theme = "New season, new favourites"
	}

	var headline, body bytes.Buffer
	if err := v.headline.Execute(&headline, data); err != nil {
		return domain.DraftContent{}, domain.NewContentGenerationError(campaign.ID, ch, err)
	}
	if err := v.body.Execute(&body, data); err != nil {
		return domain.DraftContent{}, domain.NewContentGenerationError(campaign.ID, ch, err)
	}

	return domain.DraftContent{
		CampaignID: campaign.ID,
		Channel:    ch,
		Headline:   headline.String(),
		Body:       body.String(),
		Tags:       defaultTags(campaign, ch),
	}, nil
}

func defaultTags(campaign domain.Campaign, ch domain.Channel) []string {
	words := strings.Fields(strings.ToLower(campaign.Name))
	switch ch {
	case domain.ChannelSocial:
		return []string{strings.Join(words, ""), "deals", "newarrivals"}
	case domain.ChannelSearch:
		return append(words, "buy "+strings.Join(words, " "))
	}
	return nil
}

func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
