package domain

import (
	"time"

	"github.com/google/uuid"
)

// DraftContent is generated content awaiting a compliance check.
type DraftContent struct {
	CampaignID uuid.UUID
	EntryID    uuid.UUID
	Channel    Channel
	Date       time.Time
	Budget     int64
	// Headline is the post title, email subject or ad headline.
	Headline string
	Body     string
	Tags     []string // hashtags or search keywords
}

// Text joins headline and body for guardrail scanning.
func (d DraftContent) Text() string {
	if d.Headline == "" {
		return d.Body
	}
	return d.Headline + "\n" + d.Body
}

// ComplianceVerdict is the outcome of a guardrail check.
type ComplianceVerdict struct {
	Approved   bool
	Reason     string
	Violations []string
}

// ApprovedContent is content cleared for publishing.
type ApprovedContent struct {
	DraftContent
	ApprovedAt time.Time
}

// PublishReceipt confirms delivery to a channel.
type PublishReceipt struct {
	Channel     Channel
	ExternalID  string
	PublishedAt time.Time
}
