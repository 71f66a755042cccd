package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type createScheduleRequest struct {
	CampaignID    uuid.UUID `json:"campaign_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
}

// handleCreateSchedule schedules a campaign. A second pending entry for the
// same campaign and date produces HTTP 409.
func (h *Handler) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, badRequest("invalid JSON"))
		return
	}
	if req.CampaignID == uuid.Nil || req.ScheduledTime.IsZero() {
		h.writeError(w, r, badRequest("campaign_id and scheduled_time are required"))
		return
	}
	entry, err := h.svc.Schedules.Create(r.Context(), req.CampaignID, req.ScheduledTime)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (h *Handler) handleCancelSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	entry, err := h.svc.Schedules.Cancel(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// handleListDue lists pending entries due on or before ?date=, which defaults
// to the current game date.
func (h *Handler) handleListDue(w http.ResponseWriter, r *http.Request) {
	date, err := h.dateParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	entries, err := h.svc.Schedules.ListDue(r.Context(), date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

func (h *Handler) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	days := 7
	if s := r.URL.Query().Get("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			h.writeError(w, r, badRequest("days must be a positive integer"))
			return
		}
		days = n
	}
	entries, err := h.svc.Schedules.Upcoming(r.Context(), days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// handleCalendar groups a month of entries by day. year and month default to
// the month of the current game date.
func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	today := h.svc.Clock.State().CurrentDate
	year, month := today.Year(), today.Month()
	q := r.URL.Query()
	if s := q.Get("year"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			h.writeError(w, r, badRequest("invalid year"))
			return
		}
		year = n
	}
	if s := q.Get("month"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 12 {
			h.writeError(w, r, badRequest("month must be between 1 and 12"))
			return
		}
		month = time.Month(n)
	}

	days, err := h.svc.Schedules.Calendar(r.Context(), year, month)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make(map[string][]entryResponse, len(days))
	for day, entries := range days {
		out[day] = toEntryResponses(entries)
	}
	h.writeJSON(w, http.StatusOK, out)
}

type activateResponse struct {
	Campaign campaignResponse `json:"campaign"`
	Entry    *entryResponse   `json:"entry,omitempty"`
}

func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	campaign, entry, err := h.svc.Schedules.Activate(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := activateResponse{Campaign: toCampaignResponse(campaign)}
	if entry != nil {
		e := toEntryResponse(*entry)
		resp.Entry = &e
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	campaign, err := h.svc.Schedules.Pause(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, badRequest("invalid id")
	}
	return id, nil
}

// dateParam reads ?date= as YYYY-MM-DD or RFC3339, defaulting to the current
// game date.
func (h *Handler) dateParam(r *http.Request) (time.Time, error) {
	s := r.URL.Query().Get("date")
	if s == "" {
		return h.svc.Clock.State().CurrentDate, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, badRequest("invalid date")
	}
	return t.UTC(), nil
}
