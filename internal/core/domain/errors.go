package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrScheduleNotFound   = errors.New("schedule entry not found")
	ErrClockStateNotFound = errors.New("clock state not found")
)

// CampaignNotFoundError is returned when a campaign id is unknown.
type CampaignNotFoundError struct {
	CampaignID uuid.UUID
}

func NewCampaignNotFoundError(id uuid.UUID) *CampaignNotFoundError {
	return &CampaignNotFoundError{CampaignID: id}
}

func (e *CampaignNotFoundError) Error() string {
	return fmt.Sprintf("campaign %s not found", e.CampaignID)
}

// CampaignInactiveError is returned when an operation needs an active
// campaign.
type CampaignInactiveError struct {
	CampaignID uuid.UUID
	Status     CampaignStatus
}

func NewCampaignInactiveError(id uuid.UUID, status CampaignStatus) *CampaignInactiveError {
	return &CampaignInactiveError{CampaignID: id, Status: status}
}

func (e *CampaignInactiveError) Error() string {
	return fmt.Sprintf("campaign %s is %s", e.CampaignID, e.Status)
}

// DuplicateScheduleError is returned when a pending entry already exists for
// the campaign on the same date.
type DuplicateScheduleError struct {
	CampaignID uuid.UUID
	DueDate    time.Time
}

func NewDuplicateScheduleError(campaignID uuid.UUID, due time.Time) *DuplicateScheduleError {
	return &DuplicateScheduleError{CampaignID: campaignID, DueDate: DateOf(due)}
}

func (e *DuplicateScheduleError) Error() string {
	return fmt.Sprintf("campaign %s already has a pending entry on %s", e.CampaignID, e.DueDate.Format(time.DateOnly))
}

// InvalidStateTransitionError is returned when an entry is not in the status
// a transition expects.
type InvalidStateTransitionError struct {
	EntryID uuid.UUID
	From    ScheduleStatus
	To      ScheduleStatus
}

func NewInvalidStateTransitionError(id uuid.UUID, from, to ScheduleStatus) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{EntryID: id, From: from, To: to}
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("schedule entry %s: invalid transition %s -> %s", e.EntryID, e.From, e.To)
}

// ContentGenerationError wraps a failure of the content generator.
type ContentGenerationError struct {
	CampaignID uuid.UUID
	Channel    Channel
	Err        error
}

func NewContentGenerationError(campaignID uuid.UUID, ch Channel, err error) *ContentGenerationError {
	return &ContentGenerationError{CampaignID: campaignID, Channel: ch, Err: err}
}

func (e *ContentGenerationError) Error() string {
	return fmt.Sprintf("generate %s content for campaign %s: %v", e.Channel, e.CampaignID, e.Err)
}

func (e *ContentGenerationError) Unwrap() error { return e.Err }

// ComplianceRejectedError means generated content failed a brand guardrail.
// It is never retried.
type ComplianceRejectedError struct {
	CampaignID uuid.UUID
	Reason     string
	Violations []string
}

func NewComplianceRejectedError(campaignID uuid.UUID, verdict ComplianceVerdict) *ComplianceRejectedError {
	return &ComplianceRejectedError{CampaignID: campaignID, Reason: verdict.Reason, Violations: verdict.Violations}
}

func (e *ComplianceRejectedError) Error() string {
	msg := fmt.Sprintf("campaign %s content rejected: %s", e.CampaignID, e.Reason)
	if len(e.Violations) > 0 {
		msg += " (" + strings.Join(e.Violations, "; ") + ")"
	}
	return msg
}

// PublishError is an external channel failure. It is eligible for a bounded
// number of retries.
type PublishError struct {
	CampaignID uuid.UUID
	Channel    Channel
	Attempt    int
	Err        error
}

func NewPublishError(campaignID uuid.UUID, ch Channel, err error) *PublishError {
	return &PublishError{CampaignID: campaignID, Channel: ch, Err: err}
}

func (e *PublishError) Error() string {
	if e.Attempt > 0 {
		return fmt.Sprintf("publish campaign %s to %s (attempt %d): %v", e.CampaignID, e.Channel, e.Attempt, e.Err)
	}
	return fmt.Sprintf("publish campaign %s to %s: %v", e.CampaignID, e.Channel, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }

// BudgetInfeasibleError means the allocation constraints cannot be met. The
// previous allocation is left in place.
type BudgetInfeasibleError struct {
	Pool      int64
	Campaigns int
	Reason    string
}

func NewBudgetInfeasibleError(pool int64, campaigns int, reason string) *BudgetInfeasibleError {
	return &BudgetInfeasibleError{Pool: pool, Campaigns: campaigns, Reason: reason}
}

func (e *BudgetInfeasibleError) Error() string {
	return fmt.Sprintf("budget infeasible for pool %d across %d campaigns: %s", e.Pool, e.Campaigns, e.Reason)
}

// ExecutionError carries the entry, campaign and pipeline step of a failed
// execution.
type ExecutionError struct {
	EntryID    uuid.UUID
	CampaignID uuid.UUID
	Step       ExecutionStep
	Err        error
}

func NewExecutionError(entry ScheduleEntry, step ExecutionStep, err error) *ExecutionError {
	return &ExecutionError{EntryID: entry.ID, CampaignID: entry.CampaignID, Step: step, Err: err}
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("entry %s step %s: %v", e.EntryID, e.Step, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
