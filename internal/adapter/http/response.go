package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"campaign-engine/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// badRequestError marks input the handler rejected before reaching a use case.
type badRequestError struct {
	msg string
}

func (e badRequestError) Error() string { return e.msg }

func badRequest(msg string) error { return badRequestError{msg: msg} }

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors to status codes. Unknown errors are logged and
// hidden behind a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		badReq     badRequestError
		duplicate  *domain.DuplicateScheduleError
		transition *domain.InvalidStateTransitionError
		inactive   *domain.CampaignInactiveError
		notFound   *domain.CampaignNotFoundError
		infeasible *domain.BudgetInfeasibleError
	)
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &badReq):
		status = http.StatusBadRequest
	case errors.As(err, &duplicate), errors.As(err, &transition), errors.As(err, &inactive):
		status = http.StatusConflict
	case errors.As(err, &notFound), errors.Is(err, domain.ErrScheduleNotFound):
		status = http.StatusNotFound
	case errors.As(err, &infeasible):
		status = http.StatusUnprocessableEntity
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		msg = "internal error"
	}
	h.writeJSON(w, status, errorResponse{Error: msg})
}

type clockResponse struct {
	CurrentDate string           `json:"current_date"`
	Running     bool             `json:"running"`
	Speed       domain.GameSpeed `json:"speed"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func toClockResponse(s domain.GameClockState) clockResponse {
	return clockResponse{
		CurrentDate: s.CurrentDate.Format(time.DateOnly),
		Running:     s.Running,
		Speed:       s.Speed,
		UpdatedAt:   s.UpdatedAt,
	}
}

type entryResponse struct {
	ID            uuid.UUID             `json:"id"`
	CampaignID    uuid.UUID             `json:"campaign_id"`
	ScheduledTime time.Time             `json:"scheduled_time"`
	DueDate       string                `json:"due_date"`
	Status        domain.ScheduleStatus `json:"status"`
	Recurring     bool                  `json:"recurring"`
	RetryOf       *uuid.UUID            `json:"retry_of,omitempty"`
	Reason        string                `json:"reason,omitempty"`
	Attempts      int                   `json:"attempts"`
	Retryable     bool                  `json:"retryable"`
	ExecutedAt    *time.Time            `json:"executed_at,omitempty"`
}

func toEntryResponse(e domain.ScheduleEntry) entryResponse {
	return entryResponse{
		ID:            e.ID,
		CampaignID:    e.CampaignID,
		ScheduledTime: e.ScheduledTime,
		DueDate:       e.DueDate().Format(time.DateOnly),
		Status:        e.Status,
		Recurring:     e.Recurring,
		RetryOf:       e.RetryOf,
		Reason:        e.Reason,
		Attempts:      e.Attempts,
		Retryable:     e.Retryable,
		ExecutedAt:    e.ExecutedAt,
	}
}

func toEntryResponses(entries []domain.ScheduleEntry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}
	return out
}

type campaignResponse struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	Channel        domain.Channel        `json:"channel"`
	Status         domain.CampaignStatus `json:"status"`
	AssignedBudget int64                 `json:"assigned_budget"`
	MinBudget      int64                 `json:"min_budget"`
	FrequencyDays  int                   `json:"frequency_days"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:             c.ID,
		Name:           c.Name,
		Channel:        c.Channel,
		Status:         c.Status,
		AssignedBudget: c.AssignedBudget,
		MinBudget:      c.MinBudget,
		FrequencyDays:  c.FrequencyDays,
	}
}

type resultResponse struct {
	EntryID    uuid.UUID             `json:"entry_id"`
	CampaignID uuid.UUID             `json:"campaign_id"`
	Status     domain.ScheduleStatus `json:"status"`
	Reason     string                `json:"reason,omitempty"`
	Attempts   int                   `json:"attempts"`
	Skipped    bool                  `json:"skipped,omitempty"`
	ExternalID string                `json:"external_id,omitempty"`
	Next       *entryResponse        `json:"next,omitempty"`
}

type reportResponse struct {
	Date      string           `json:"date"`
	Completed int              `json:"completed"`
	Failed    int              `json:"failed"`
	Skipped   int              `json:"skipped"`
	Results   []resultResponse `json:"results"`
}

func toReportResponse(rep domain.ExecutionReport) reportResponse {
	out := reportResponse{
		Date:      rep.Date.Format(time.DateOnly),
		Completed: rep.Completed,
		Failed:    rep.Failed,
		Skipped:   rep.Skipped,
		Results:   make([]resultResponse, len(rep.Results)),
	}
	for i, res := range rep.Results {
		rr := resultResponse{
			EntryID:    res.EntryID,
			CampaignID: res.CampaignID,
			Status:     res.Status,
			Reason:     res.Reason,
			Attempts:   res.Attempts,
			Skipped:    res.Skipped,
		}
		if res.Receipt != nil {
			rr.ExternalID = res.Receipt.ExternalID
		}
		if res.Next != nil {
			next := toEntryResponse(*res.Next)
			rr.Next = &next
		}
		out.Results[i] = rr
	}
	return out
}

type rebalanceResponse struct {
	Pool       int64                 `json:"pool"`
	Applied    bool                  `json:"applied"`
	Iterations int                   `json:"iterations"`
	Previous   map[uuid.UUID]int64   `json:"previous"`
	Allocation map[uuid.UUID]int64   `json:"allocation"`
	Scores     map[uuid.UUID]float64 `json:"scores"`
}

func toRebalanceResponse(res domain.RebalanceResult) rebalanceResponse {
	return rebalanceResponse{
		Pool:       res.Pool,
		Applied:    res.Applied,
		Iterations: res.Iterations,
		Previous:   res.Previous,
		Allocation: res.Allocation,
		Scores:     res.Scores,
	}
}
