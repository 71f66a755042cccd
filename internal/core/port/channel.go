package port

import (
	"context"

	"campaign-engine/internal/core/domain"
)

// Channel is the per-channel execution capability selected by a campaign's
// channel field.
type Channel interface {
	// Generate produces draft content or fails with
	// *domain.ContentGenerationError.
	Generate(ctx context.Context, campaign domain.Campaign, entry domain.ScheduleEntry) (domain.DraftContent, error)
	// Publish delivers approved content. Transient failures are returned as
	// *domain.PublishError. Implementations should return once ctx is done;
	// callers bound each call by its deadline regardless.
	Publish(ctx context.Context, content domain.ApprovedContent) (domain.PublishReceipt, error)
}

// ContentGenerator is the opaque content source (an LLM or templates) behind
// a Channel.
type ContentGenerator interface {
	Generate(ctx context.Context, campaign domain.Campaign, ch domain.Channel) (domain.DraftContent, error)
}

// Publisher is the transport behind a Channel.
type Publisher interface {
	Publish(ctx context.Context, content domain.ApprovedContent) (domain.PublishReceipt, error)
}

// ComplianceChecker validates drafts against brand guardrails.
type ComplianceChecker interface {
	Check(ctx context.Context, draft domain.DraftContent) (domain.ComplianceVerdict, error)
}
