package channel

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/core/port/mocks"
)

func testCampaign(ch domain.Channel) domain.Campaign {
	return domain.Campaign{
		ID:             uuid.New(),
		Name:           "Trail Runner",
		Channel:        ch,
		Status:         domain.CampaignActive,
		AssignedBudget: 25000,
		Brief:          "Lightweight shoes for muddy spring trails",
	}
}

func TestNewRegistryRequiresEveryPublisher(t *testing.T) {
	gen := mocks.NewMockContentGenerator(t)
	pub := mocks.NewMockPublisher(t)

	_, err := NewRegistry(gen, map[domain.Channel]port.Publisher{domain.ChannelSocial: pub})
	assert.ErrorContains(t, err, "no publisher")

	registry, err := NewRegistry(gen, map[domain.Channel]port.Publisher{
		domain.ChannelSocial: pub,
		domain.ChannelEmail:  pub,
		domain.ChannelSearch: pub,
	})
	require.NoError(t, err)
	assert.Len(t, registry, 3)
}

func TestChannelGenerateFillsDraft(t *testing.T) {
	campaign := testCampaign(domain.ChannelSocial)
	entry := domain.ScheduleEntry{ID: uuid.New(), CampaignID: campaign.ID, ScheduledTime: time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)}

	gen := mocks.NewMockContentGenerator(t)
	gen.EXPECT().Generate(mock.Anything, campaign, domain.ChannelSocial).
		Return(domain.DraftContent{Body: "Hit the trails", Tags: []string{"trail running", "#spring"}}, nil).Once()

	draft, err := New(domain.ChannelSocial, gen, mocks.NewMockPublisher(t)).Generate(context.Background(), campaign, entry)
	require.NoError(t, err)
	assert.Equal(t, campaign.ID, draft.CampaignID)
	assert.Equal(t, entry.ID, draft.EntryID)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), draft.Date)
	assert.Equal(t, int64(25000), draft.Budget)
	assert.Equal(t, []string{"#trailrunning", "#spring"}, draft.Tags)
}

func TestChannelGenerateWrapsFailures(t *testing.T) {
	campaign := testCampaign(domain.ChannelEmail)

	gen := mocks.NewMockContentGenerator(t)
	gen.EXPECT().Generate(mock.Anything, campaign, domain.ChannelEmail).Return(domain.DraftContent{}, errors.New("quota")).Once()
	gen.EXPECT().Generate(mock.Anything, campaign, domain.ChannelEmail).Return(domain.DraftContent{Headline: "only a subject"}, nil).Once()

	c := New(domain.ChannelEmail, gen, mocks.NewMockPublisher(t))
	for range 2 {
		_, err := c.Generate(context.Background(), campaign, domain.ScheduleEntry{ID: uuid.New()})
		var genErr *domain.ContentGenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, domain.ChannelEmail, genErr.Channel)
	}
}

func TestChannelPublishStampsChannel(t *testing.T) {
	content := domain.ApprovedContent{DraftContent: domain.DraftContent{CampaignID: uuid.New(), Body: "x"}}
	pub := mocks.NewMockPublisher(t)
	pub.EXPECT().Publish(mock.Anything, content).Return(domain.PublishReceipt{ExternalID: "42"}, nil).Once()

	receipt, err := New(domain.ChannelSearch, mocks.NewMockContentGenerator(t), pub).Publish(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelSearch, receipt.Channel)
	assert.Equal(t, "42", receipt.ExternalID)
}

func TestFormat(t *testing.T) {
	long := strings.Repeat("spring trail deals ", 30)

	social := Format(domain.DraftContent{
		Channel: domain.ChannelSocial,
		Body:    long,
		Tags:    []string{"a", "#b", "c", "d", "e", "f", "A", ""},
	})
	assert.Equal(t, []string{"#a", "#b", "#c", "#d", "#e"}, social.Tags)
	post := social.Body + " " + strings.Join(social.Tags, " ")
	assert.LessOrEqual(t, utf8.RuneCountInString(post), SocialPostLimit)

	email := Format(domain.DraftContent{Channel: domain.ChannelEmail, Headline: long, Body: long})
	assert.LessOrEqual(t, utf8.RuneCountInString(email.Headline), EmailSubjectLimit)
	assert.Equal(t, strings.TrimSpace(long), email.Body, "email bodies are not cut")

	search := Format(domain.DraftContent{Channel: domain.ChannelSearch, Headline: "Ünïcödé trail shoes for every runner", Body: long})
	assert.LessOrEqual(t, utf8.RuneCountInString(search.Headline), SearchHeadlineLimit)
	assert.LessOrEqual(t, utf8.RuneCountInString(search.Body), SearchBodyLimit)
	assert.True(t, utf8.ValidString(search.Headline))
}

func TestTemplateGenerator(t *testing.T) {
	g := NewTemplateGenerator()
	g.pick = func(int) int { return 1 }

	for _, ch := range domain.Channels {
		t.Run(string(ch), func(t *testing.T) {
			campaign := testCampaign(ch)
			draft, err := g.Generate(context.Background(), campaign, ch)
			require.NoError(t, err)
			assert.Contains(t, draft.Text(), "Trail Runner")
			assert.NotEmpty(t, draft.Headline)
		})
	}

	email, err := g.Generate(context.Background(), testCampaign(domain.ChannelEmail), domain.ChannelEmail)
	require.NoError(t, err)
	assert.Equal(t, "Your exclusive Trail Runner offer inside", email.Headline)
	assert.Contains(t, email.Body, "https://example.com/trail-runner")

	_, err = g.Generate(context.Background(), testCampaign(domain.ChannelSocial), "fax")
	var genErr *domain.ContentGenerationError
	assert.ErrorAs(t, err, &genErr)
}
