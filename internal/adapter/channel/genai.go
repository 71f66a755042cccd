package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
)

// contentModel is the subset of *genai.Models used by GenAIGenerator.
type contentModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GenAIGenerator asks a Gemini model for channel content as JSON.
type GenAIGenerator struct {
	models contentModel
	model  string
}

func NewGenAIGenerator(ctx context.Context, cfg configs.GenAI) (*GenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("genai api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GenAIGenerator{models: client.Models, model: cfg.Model}, nil
}

type generatedContent struct {
	Headline string   `json:"headline"`
	Body     string   `json:"body"`
	Tags     []string `json:"tags"`
}

const systemPrompt = `You are a senior marketing copywriter. Write on-brand, honest copy.
Never promise guaranteed results, never make medical or financial claims.
Answer with a single JSON object: {"headline": string, "body": string, "tags": [string]}.`

var channelBriefs = map[domain.Channel]string{
	domain.ChannelSocial: "A social media post. The headline is under 40 characters. The body plus hashtags stays under 280 characters. Tags are 3 to 5 hashtags.",
	domain.ChannelEmail:  "A marketing email. The headline is the subject line, under 50 characters, with at most one exclamation mark. The body is plain text with a call to action.",
	domain.ChannelSearch: "A search ad. The headline is at most 30 characters. The body is a description of at most 90 characters. Tags are 5 to 10 search keywords.",
}

func (g *GenAIGenerator) Generate(ctx context.Context, campaign domain.Campaign, ch domain.Channel) (domain.DraftContent, error) {
	brief, ok := channelBriefs[ch]
	if !ok {
		return domain.DraftContent{}, domain.NewContentGenerationError(campaign.ID, ch, fmt.Errorf("unsupported channel %q", ch))
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Format: %s\n", brief)
	fmt.Fprintf(&prompt, "Product: %s\n", campaign.Name)
	if campaign.Brief != "" {
		fmt.Fprintf(&prompt, "Message: %s\n", campaign.Brief)
	}

	resp, err := g.models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt.String(), genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			Temperature:       genai.Ptr[float32](0.7),
		})
	if err != nil {
		return domain.DraftContent{}, domain.NewContentGenerationError(campaign.ID, ch, err)
	}

	var out generatedContent
	if err = json.Unmarshal([]byte(stripFence(resp.Text())), &out); err != nil {
		return domain.DraftContent{}, domain.NewContentGenerationError(campaign.ID, ch, fmt.Errorf("decode model output: %w", err))
	}
	return domain.DraftContent{
		CampaignID: campaign.ID,
		Channel:    ch,
		Headline:   out.Headline,
		Body:       out.Body,
		Tags:       out.Tags,
	}, nil
}

// stripFence removes a markdown code fence some models wrap JSON in.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}
