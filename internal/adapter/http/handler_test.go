package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port/mocks"
	"campaign-engine/internal/metrics"
)

var today = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

type handlerFixture struct {
	clock      *mocks.MockClockUseCase
	schedules  *mocks.MockScheduleUseCase
	executor   *mocks.MockExecutorUseCase
	rebalancer *mocks.MockRebalancerUseCase
	server     *httptest.Server
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	f := &handlerFixture{
		clock:      mocks.NewMockClockUseCase(t),
		schedules:  mocks.NewMockScheduleUseCase(t),
		executor:   mocks.NewMockExecutorUseCase(t),
		rebalancer: mocks.NewMockRebalancerUseCase(t),
	}
	reg := prometheus.NewRegistry()
	h := NewHandler(Services{
		Clock:      f.clock,
		Schedules:  f.schedules,
		Executor:   f.executor,
		Rebalancer: f.rebalancer,
	}, reg, slog.New(slog.DiscardHandler), metrics.New(reg))
	f.server = httptest.NewServer(h.Router())
	t.Cleanup(f.server.Close)
	return f
}

func (f *handlerFixture) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, f.server.URL+path, r)
	require.NoError(t, err)
	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHandler_ClockState(t *testing.T) {
	f := newHandlerFixture(t)
	f.clock.EXPECT().State().Return(domain.GameClockState{CurrentDate: today, Running: true, Speed: domain.SpeedFast})

	resp := f.do(t, http.MethodGet, "/api/v1/clock", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[clockResponse](t, resp)
	assert.Equal(t, "2025-03-10", got.CurrentDate)
	assert.True(t, got.Running)
	assert.Equal(t, domain.SpeedFast, got.Speed)
}

func TestHandler_ClockSpeed(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(f *handlerFixture)
		wantStatus int
	}{
		{
			name:       "invalid json",
			body:       "{",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown speed",
			body:       `{"speed":"warp"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "ok",
			body: `{"speed":"slow"}`,
			setup: func(f *handlerFixture) {
				f.clock.EXPECT().SetSpeed(mock.Anything, domain.SpeedSlow).
					Return(domain.GameClockState{CurrentDate: today, Speed: domain.SpeedSlow}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			resp := f.do(t, http.MethodPut, "/api/v1/clock/speed", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandler_CreateSchedule(t *testing.T) {
	campaignID := uuid.New()
	at := today.Add(9 * time.Hour)
	body := `{"campaign_id":"` + campaignID.String() + `","scheduled_time":"2025-03-10T09:00:00Z"}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "created", body: body, wantStatus: http.StatusCreated},
		{name: "duplicate", body: body, err: domain.NewDuplicateScheduleError(campaignID, at), wantStatus: http.StatusConflict},
		{name: "unknown campaign", body: body, err: domain.NewCampaignNotFoundError(campaignID), wantStatus: http.StatusNotFound},
		{name: "store failure", body: body, err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
		{name: "missing fields", body: `{}`, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.wantStatus != http.StatusBadRequest {
				entry := domain.ScheduleEntry{ID: uuid.New(), CampaignID: campaignID, ScheduledTime: at, Status: domain.SchedulePending}
				f.schedules.EXPECT().Create(mock.Anything, campaignID, at).Return(entry, tt.err)
			}

			resp := f.do(t, http.MethodPost, "/api/v1/schedules", tt.body)

			require.Equal(t, tt.wantStatus, resp.StatusCode)
			switch tt.wantStatus {
			case http.StatusCreated:
				got := decode[entryResponse](t, resp)
				assert.Equal(t, "2025-03-10", got.DueDate)
				assert.Equal(t, domain.SchedulePending, got.Status)
			case http.StatusInternalServerError:
				assert.Equal(t, "internal error", decode[errorResponse](t, resp).Error)
			}
		})
	}
}

func TestHandler_CancelSchedule(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{name: "cancelled", path: id.String(), wantStatus: http.StatusOK},
		{name: "not found", path: id.String(), err: domain.ErrScheduleNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "already executing",
			path:       id.String(),
			err:        domain.NewInvalidStateTransitionError(id, domain.ScheduleExecuting, domain.ScheduleCancelled),
			wantStatus: http.StatusConflict,
		},
		{name: "bad id", path: "nope", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.wantStatus != http.StatusBadRequest {
				f.schedules.EXPECT().Cancel(mock.Anything, id).
					Return(domain.ScheduleEntry{ID: id, Status: domain.ScheduleCancelled}, tt.err)
			}
			resp := f.do(t, http.MethodDelete, "/api/v1/schedules/"+tt.path, "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandler_ListDue(t *testing.T) {
	t.Run("defaults to game date", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.clock.EXPECT().State().Return(domain.GameClockState{CurrentDate: today})
		f.schedules.EXPECT().ListDue(mock.Anything, today).
			Return([]domain.ScheduleEntry{{ID: uuid.New(), ScheduledTime: today}}, nil)

		resp := f.do(t, http.MethodGet, "/api/v1/schedules/due", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decode[[]entryResponse](t, resp), 1)
	})

	t.Run("explicit date", func(t *testing.T) {
		f := newHandlerFixture(t)
		want := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		f.schedules.EXPECT().ListDue(mock.Anything, want).Return(nil, nil)

		resp := f.do(t, http.MethodGet, "/api/v1/schedules/due?date=2025-04-01", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid date", func(t *testing.T) {
		f := newHandlerFixture(t)
		resp := f.do(t, http.MethodGet, "/api/v1/schedules/due?date=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_Upcoming(t *testing.T) {
	f := newHandlerFixture(t)
	f.schedules.EXPECT().Upcoming(mock.Anything, 14).Return(nil, nil)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/v1/schedules/upcoming?days=14", "").StatusCode)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/v1/schedules/upcoming?days=0", "").StatusCode)
}

func TestHandler_Calendar(t *testing.T) {
	f := newHandlerFixture(t)
	f.clock.EXPECT().State().Return(domain.GameClockState{CurrentDate: today})
	entry := domain.ScheduleEntry{ID: uuid.New(), ScheduledTime: time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)}
	f.schedules.EXPECT().Calendar(mock.Anything, 2025, time.May).
		Return(map[string][]domain.ScheduleEntry{"2025-05-02": {entry}}, nil)

	resp := f.do(t, http.MethodGet, "/api/v1/schedules/calendar?month=5", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[map[string][]entryResponse](t, resp)
	require.Len(t, got["2025-05-02"], 1)
	assert.Equal(t, entry.ID, got["2025-05-02"][0].ID)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/v1/schedules/calendar?month=13", "").StatusCode)
}

func TestHandler_ActivateAndPause(t *testing.T) {
	id := uuid.New()
	campaign := domain.Campaign{ID: id, Name: "Spring Sale", Channel: domain.ChannelEmail, Status: domain.CampaignActive}

	t.Run("activate schedules first run", func(t *testing.T) {
		f := newHandlerFixture(t)
		entry := domain.ScheduleEntry{ID: uuid.New(), CampaignID: id, ScheduledTime: today, Status: domain.SchedulePending}
		f.schedules.EXPECT().Activate(mock.Anything, id).Return(campaign, &entry, nil)

		resp := f.do(t, http.MethodPost, "/api/v1/campaigns/"+id.String()+"/activate", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[activateResponse](t, resp)
		assert.Equal(t, domain.CampaignActive, got.Campaign.Status)
		require.NotNil(t, got.Entry)
		assert.Equal(t, entry.ID, got.Entry.ID)
	})

	t.Run("pause completed campaign", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.schedules.EXPECT().Pause(mock.Anything, id).
			Return(campaign, domain.NewCampaignInactiveError(id, domain.CampaignCompleted))

		resp := f.do(t, http.MethodPost, "/api/v1/campaigns/"+id.String()+"/pause", "")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestHandler_RunNow(t *testing.T) {
	f := newHandlerFixture(t)
	f.clock.EXPECT().State().Return(domain.GameClockState{CurrentDate: today})
	next := domain.ScheduleEntry{ID: uuid.New(), ScheduledTime: today.AddDate(0, 0, 7)}
	f.executor.EXPECT().RunNow(mock.Anything, today).Return(domain.ExecutionReport{
		Date:      today,
		Completed: 1,
		Results: []domain.ExecutionResult{{
			EntryID:  uuid.New(),
			Status:   domain.ScheduleCompleted,
			Attempts: 1,
			Next:     &next,
			Receipt:  &domain.PublishReceipt{ExternalID: "post-1"},
		}},
	}, nil)

	resp := f.do(t, http.MethodPost, "/api/v1/executions/run", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[reportResponse](t, resp)
	assert.Equal(t, 1, got.Completed)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "post-1", got.Results[0].ExternalID)
	require.NotNil(t, got.Results[0].Next)
	assert.Equal(t, "2025-03-17", got.Results[0].Next.DueDate)
}

func TestHandler_Rebalance(t *testing.T) {
	t.Run("applied", func(t *testing.T) {
		f := newHandlerFixture(t)
		id := uuid.New()
		f.rebalancer.EXPECT().Rebalance(mock.Anything).Return(domain.RebalanceResult{
			Pool:       10000,
			Applied:    true,
			Allocation: domain.BudgetAllocation{id: 10000},
		}, nil)

		resp := f.do(t, http.MethodPost, "/api/v1/rebalance", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[rebalanceResponse](t, resp)
		assert.True(t, got.Applied)
		assert.Equal(t, int64(10000), got.Allocation[id])
	})

	t.Run("infeasible", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.rebalancer.EXPECT().Rebalance(mock.Anything).
			Return(domain.RebalanceResult{}, domain.NewBudgetInfeasibleError(100, 3, "min budgets total 300 exceed the pool"))

		resp := f.do(t, http.MethodPost, "/api/v1/rebalance", "")

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, decode[errorResponse](t, resp).Error, "exceed the pool")
	})
}

func TestHandler_Metrics(t *testing.T) {
	f := newHandlerFixture(t)
	f.clock.EXPECT().State().Return(domain.GameClockState{CurrentDate: today})
	f.do(t, http.MethodGet, "/api/v1/clock", "")

	resp := f.do(t, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/api/v1/clock`)
	assert.Contains(t, string(body), `status_code="200"`)
}
