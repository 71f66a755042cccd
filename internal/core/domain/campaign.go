package domain

import (
	"time"

	"github.com/google/uuid"
)

// Channel is the delivery channel of a campaign.
type Channel string

const (
	ChannelSocial Channel = "social"
	ChannelEmail  Channel = "email"
	ChannelSearch Channel = "search"
)

// Channels lists every supported channel.
var Channels = []Channel{ChannelSocial, ChannelEmail, ChannelSearch}

// Valid reports whether c is a supported channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelSocial, ChannelEmail, ChannelSearch:
		return true
	}
	return false
}

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Campaign represents a marketing campaign.
// Budgets are stored in integer units (e.g. cents).
type Campaign struct {
	ID             uuid.UUID
	Name           string
	Channel        Channel
	Status         CampaignStatus
	AssignedBudget int64
	MinBudget      int64 // 0 means the configured default floor
	FrequencyDays  int   // 0 means one-off
	SegmentID      *uuid.UUID
	Brief          string // product and message used to prompt content
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Recurring reports whether the campaign re-schedules itself after a
// successful execution.
func (c Campaign) Recurring() bool {
	return c.FrequencyDays > 0
}

// CampaignFilter narrows Campaign Repository listings. Zero values match
// everything.
type CampaignFilter struct {
	Statuses []CampaignStatus
	Channel  Channel
}

// Match reports whether c satisfies the filter.
func (f CampaignFilter) Match(c Campaign) bool {
	if f.Channel != "" && f.Channel != c.Channel {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if s == c.Status {
			return true
		}
	}
	return false
}

// CampaignUpdate lists the fields the core is allowed to change. Nil fields
// are left untouched.
type CampaignUpdate struct {
	Status         *CampaignStatus
	AssignedBudget *int64
}
