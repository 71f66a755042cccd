package channel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
)

type fakeModel struct {
	text   string
	err    error
	prompt string
	model  string
}

func (f *fakeModel) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(f.text, genai.RoleModel)}},
	}, nil
}

func TestGenAIGeneratorDecodesJSON(t *testing.T) {
	model := &fakeModel{text: "```json\n{\"headline\":\"Run wild\",\"body\":\"New trail shoes are here.\",\"tags\":[\"#trail\"]}\n```"}
	g := &GenAIGenerator{models: model, model: "gemini-test"}
	campaign := testCampaign(domain.ChannelSocial)

	draft, err := g.Generate(context.Background(), campaign, domain.ChannelSocial)
	require.NoError(t, err)
	assert.Equal(t, "Run wild", draft.Headline)
	assert.Equal(t, "New trail shoes are here.", draft.Body)
	assert.Equal(t, []string{"#trail"}, draft.Tags)
	assert.Equal(t, "gemini-test", model.model)
	assert.Contains(t, model.prompt, "Trail Runner")
	assert.Contains(t, model.prompt, "280 characters")
}

func TestGenAIGeneratorFailures(t *testing.T) {
	campaign := testCampaign(domain.ChannelSearch)

	tests := []struct {
		name  string
		model *fakeModel
		ch    domain.Channel
	}{
		{name: "api error", model: &fakeModel{err: errors.New("429 resource exhausted")}, ch: domain.ChannelSearch},
		{name: "not json", model: &fakeModel{text: "Sure! Here is your ad"}, ch: domain.ChannelSearch},
		{name: "unknown channel", model: &fakeModel{}, ch: "fax"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &GenAIGenerator{models: tt.model, model: "m"}
			_, err := g.Generate(context.Background(), campaign, tt.ch)
			var genErr *domain.ContentGenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, campaign.ID, genErr.CampaignID)
		})
	}
}

func TestNewGenAIGeneratorRequiresKey(t *testing.T) {
	_, err := NewGenAIGenerator(context.Background(), configs.GenAI{Model: "gemini-2.0-flash"})
	assert.Error(t, err)
}
