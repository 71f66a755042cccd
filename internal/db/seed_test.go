package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campaign-engine/internal/core/domain"
)

func TestDemoCampaigns(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	campaigns := DemoCampaigns(1_000_001, now)

	var total int64
	ids := make(map[string]bool)
	channels := make(map[domain.Channel]bool)
	for _, c := range campaigns {
		total += c.AssignedBudget
		ids[c.ID.String()] = true
		channels[c.Channel] = true
		assert.Equal(t, domain.CampaignActive, c.Status)
		assert.True(t, c.Recurring())
	}
	assert.Equal(t, int64(1_000_001), total)
	assert.Len(t, ids, len(campaigns))
	assert.Len(t, channels, len(domain.Channels))

	again := DemoCampaigns(1_000_001, now)
	assert.Equal(t, campaigns[2].ID, again[2].ID, "ids are stable across restarts")
}
