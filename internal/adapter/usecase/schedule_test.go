package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-engine/internal/adapter/memory"
	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
)

type scheduleFixture struct {
	svc       *ScheduleService
	schedules *memory.ScheduleStore
	campaigns *memory.CampaignRepository
}

func newScheduleFixture(t *testing.T, today time.Time) *scheduleFixture {
	t.Helper()
	f := &scheduleFixture{
		schedules: memory.NewScheduleStore(),
		campaigns: memory.NewCampaignRepository(),
	}
	cfg := configs.Executor{RetryDelay: time.Hour, RetentionDays: 30, PlanHorizonDays: 180}
	f.svc = NewScheduleService(f.schedules, f.campaigns, fixedDate{date: today}, cfg, discardLogger())
	return f
}

func (f *scheduleFixture) campaign(t *testing.T, status domain.CampaignStatus, frequency int) domain.Campaign {
	t.Helper()
	c, err := f.campaigns.Save(context.Background(), domain.Campaign{
		Name:          "newsletter",
		Channel:       domain.ChannelEmail,
		Status:        status,
		FrequencyDays: frequency,
	})
	require.NoError(t, err)
	return c
}

// fail drives an entry through executing to failed.
func (f *scheduleFixture) fail(t *testing.T, e domain.ScheduleEntry, retryable bool) {
	t.Helper()
	ctx := context.Background()
	_, err := f.schedules.MarkExecuting(ctx, e.ID)
	require.NoError(t, err)
	_, err = f.schedules.MarkFailed(ctx, e.ID, domain.Outcome{Reason: "boom", Attempts: 3, Retryable: retryable})
	require.NoError(t, err)
}

func TestScheduleServiceCreate(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t, day(1))
	c := f.campaign(t, domain.CampaignActive, 7)

	e, err := f.svc.Create(ctx, c.ID, day(3).Add(10*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, domain.SchedulePending, e.Status)
	assert.True(t, e.Recurring)

	_, err = f.svc.Create(ctx, c.ID, day(3))
	var dup *domain.DuplicateScheduleError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, day(3), dup.DueDate)

	_, err = f.svc.Cancel(ctx, e.ID)
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, c.ID, day(3))
	require.NoError(t, err, "a cancelled entry frees its slot")

	done := f.campaign(t, domain.CampaignCompleted, 0)
	_, err = f.svc.Create(ctx, done.ID, day(3))
	var inactive *domain.CampaignInactiveError
	require.ErrorAs(t, err, &inactive)
}

func TestScheduleServiceUpcomingAndCalendar(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t, day(10))
	a := f.campaign(t, domain.CampaignActive, 0)
	b := f.campaign(t, domain.CampaignActive, 0)

	for _, at := range []time.Time{day(10), day(12).Add(8 * time.Hour), day(20)} {
		_, err := f.svc.Create(ctx, a.ID, at)
		require.NoError(t, err)
	}
	_, err := f.svc.Create(ctx, b.ID, day(12))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, b.ID, day(40))
	require.NoError(t, err)

	upcoming, err := f.svc.Upcoming(ctx, 7)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	assert.Equal(t, day(10), upcoming[0].ScheduledTime)
	assert.Equal(t, b.ID, upcoming[1].CampaignID)

	_, err = f.svc.Upcoming(ctx, 0)
	assert.Error(t, err)

	calendar, err := f.svc.Calendar(ctx, 2025, time.March)
	require.NoError(t, err)
	assert.Len(t, calendar, 3)
	assert.Len(t, calendar["2025-03-12"], 2)
	assert.Len(t, calendar["2025-03-20"], 1)
	assert.NotContains(t, calendar, "2025-04-09")

	_, err = f.svc.Calendar(ctx, 2025, 13)
	assert.Error(t, err)
}

func TestScheduleServiceActivateAndPause(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t, day(5))
	c := f.campaign(t, domain.CampaignDraft, 7)

	activated, entry, err := f.svc.Activate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, activated.Status)
	require.NotNil(t, entry)
	assert.Equal(t, day(5), entry.ScheduledTime)

	_, again, err := f.svc.Activate(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, again, "the slot for today is already taken")

	paused, err := f.svc.Pause(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, paused.Status)

	paused, err = f.svc.Pause(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, paused.Status)

	draft := f.campaign(t, domain.CampaignDraft, 0)
	_, err = f.svc.Pause(ctx, draft.ID)
	var inactive *domain.CampaignInactiveError
	assert.ErrorAs(t, err, &inactive)

	done := f.campaign(t, domain.CampaignCompleted, 0)
	_, _, err = f.svc.Activate(ctx, done.ID)
	assert.ErrorAs(t, err, &inactive)
}

func TestScheduleServicePlan(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t, day(10))
	c := f.campaign(t, domain.CampaignActive, 7)

	planned, err := f.svc.Plan(ctx, c.ID, 30)
	require.NoError(t, err)
	require.Len(t, planned, 5)
	assert.Equal(t, day(10), planned[0].ScheduledTime)
	assert.Equal(t, day(38), planned[4].ScheduledTime)

	planned, err = f.svc.Plan(ctx, c.ID, 30)
	require.NoError(t, err)
	assert.Empty(t, planned)

	oneOff := f.campaign(t, domain.CampaignActive, 0)
	_, err = f.svc.Plan(ctx, oneOff.ID, 30)
	assert.Error(t, err)
}

func TestScheduleServiceRescheduleFailed(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t, day(10))

	active := f.campaign(t, domain.CampaignActive, 0)
	paused := f.campaign(t, domain.CampaignPaused, 0)

	transient, err := f.schedules.Create(ctx, domain.ScheduleRequest{CampaignID: active.ID, ScheduledTime: day(10)})
	require.NoError(t, err)
	f.fail(t, transient, true)

	rejected, err := f.schedules.Create(ctx, domain.ScheduleRequest{CampaignID: active.ID, ScheduledTime: day(9)})
	require.NoError(t, err)
	f.fail(t, rejected, false)

	stopped, err := f.schedules.Create(ctx, domain.ScheduleRequest{CampaignID: paused.ID, ScheduledTime: day(10)})
	require.NoError(t, err)
	f.fail(t, stopped, true)

	n, err := f.svc.RescheduleFailed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	due, err := f.schedules.ListDue(ctx, day(10))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, day(10).Add(time.Hour), due[0].ScheduledTime)
	require.NotNil(t, due[0].RetryOf)
	assert.Equal(t, transient.ID, *due[0].RetryOf)

	n, err = f.svc.RescheduleFailed(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "an entry is retried once")

	f.fail(t, due[0], true)
	n, err = f.svc.RescheduleFailed(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "retries are not retried")
}

func TestScheduleServiceMaintainPurgesOldEntries(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t, day(45))
	c := f.campaign(t, domain.CampaignActive, 0)

	old, err := f.schedules.Create(ctx, domain.ScheduleRequest{CampaignID: c.ID, ScheduledTime: day(1)})
	require.NoError(t, err)
	_, err = f.schedules.Cancel(ctx, old.ID)
	require.NoError(t, err)

	stale, err := f.schedules.Create(ctx, domain.ScheduleRequest{CampaignID: c.ID, ScheduledTime: day(2)})
	require.NoError(t, err)

	recent, err := f.schedules.Create(ctx, domain.ScheduleRequest{CampaignID: c.ID, ScheduledTime: day(40)})
	require.NoError(t, err)
	_, err = f.schedules.Cancel(ctx, recent.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Maintain(ctx, day(45)))

	_, err = f.schedules.Get(ctx, old.ID)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
	_, err = f.schedules.Get(ctx, stale.ID)
	assert.NoError(t, err, "pending entries are never purged")
	_, err = f.schedules.Get(ctx, recent.ID)
	assert.NoError(t, err)
}
