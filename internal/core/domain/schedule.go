package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus is the state of a schedule entry.
type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	ScheduleExecuting ScheduleStatus = "executing"
	ScheduleCompleted ScheduleStatus = "completed"
	ScheduleFailed    ScheduleStatus = "failed"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// Terminal reports whether no further transition is possible from s.
func (s ScheduleStatus) Terminal() bool {
	return s == ScheduleCompleted || s == ScheduleFailed || s == ScheduleCancelled
}

var transitions = map[ScheduleStatus][]ScheduleStatus{
	SchedulePending:   {ScheduleExecuting, ScheduleCancelled},
	ScheduleExecuting: {ScheduleCompleted, ScheduleFailed},
}

// CanTransition reports whether an entry may move from one status to another.
func CanTransition(from, to ScheduleStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ScheduleEntry is one planned execution of a campaign.
type ScheduleEntry struct {
	ID            uuid.UUID
	CampaignID    uuid.UUID
	ScheduledTime time.Time
	Status        ScheduleStatus
	Recurring     bool
	RetryOf       *uuid.UUID
	Reason        string
	Attempts      int
	// Retryable is false for failures that must not be retried
	// automatically, such as compliance rejections.
	Retryable  bool
	ExecutedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DueDate is the day the entry belongs to.
func (e ScheduleEntry) DueDate() time.Time {
	return DateOf(e.ScheduledTime)
}

// ScheduleRequest describes an entry to create.
type ScheduleRequest struct {
	CampaignID    uuid.UUID
	ScheduledTime time.Time
	Recurring     bool
	RetryOf       *uuid.UUID
}

// Outcome records how a terminal transition ended.
type Outcome struct {
	Reason    string
	Attempts  int
	Retryable bool
}
