package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExecutionStep names a pipeline stage.
type ExecutionStep string

const (
	StepLoad       ExecutionStep = "load"
	StepGenerate   ExecutionStep = "generate"
	StepCompliance ExecutionStep = "compliance"
	StepPublish    ExecutionStep = "publish"
)

// ExecutionResult is the outcome of one schedule entry.
type ExecutionResult struct {
	EntryID    uuid.UUID
	CampaignID uuid.UUID
	Status     ScheduleStatus
	Reason     string
	Attempts   int
	// Skipped is set when another run already claimed the entry.
	Skipped bool
	// Next is the follow-up entry created for a recurring campaign.
	Next    *ScheduleEntry
	Receipt *PublishReceipt
}

// ExecutionReport summarises one executor run.
type ExecutionReport struct {
	Date      time.Time
	Results   []ExecutionResult
	Completed int
	Failed    int
	Skipped   int
}
