package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-engine/internal/adapter/memory"
	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/core/port/mocks"
)

type executorFixture struct {
	exec       *Executor
	schedules  *memory.ScheduleStore
	campaigns  *memory.CampaignRepository
	channel    *mocks.MockChannel
	compliance *mocks.MockComplianceChecker
	notifier   *mocks.MockNotifier
}

func newExecutorFixture(t *testing.T, cfg configs.Executor) *executorFixture {
	t.Helper()
	f := &executorFixture{
		schedules:  memory.NewScheduleStore(),
		campaigns:  memory.NewCampaignRepository(),
		channel:    mocks.NewMockChannel(t),
		compliance: mocks.NewMockComplianceChecker(t),
		notifier:   mocks.NewMockNotifier(t),
	}
	f.exec = NewExecutor(ExecutorDeps{
		Schedules:  f.schedules,
		Campaigns:  f.campaigns,
		Channels:   map[domain.Channel]port.Channel{domain.ChannelSocial: f.channel},
		Compliance: f.compliance,
		Notifier:   f.notifier,
	}, cfg, discardLogger(), nil)
	return f
}

func fastExecutorConfig() configs.Executor {
	return configs.Executor{MaxConcurrent: 4, PublishAttempts: 3, PublishTimeout: time.Second}
}

func (f *executorFixture) campaign(t *testing.T, status domain.CampaignStatus, frequency int) domain.Campaign {
	t.Helper()
	c, err := f.campaigns.Save(context.Background(), domain.Campaign{
		Name:          "spring sale",
		Channel:       domain.ChannelSocial,
		Status:        status,
		FrequencyDays: frequency,
	})
	require.NoError(t, err)
	return c
}

func (f *executorFixture) schedule(t *testing.T, c domain.Campaign, at time.Time) domain.ScheduleEntry {
	t.Helper()
	e, err := f.schedules.Create(context.Background(), domain.ScheduleRequest{CampaignID: c.ID, ScheduledTime: at, Recurring: c.Recurring()})
	require.NoError(t, err)
	return e
}

func (f *executorFixture) generateOK() {
	f.channel.EXPECT().
		Generate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c domain.Campaign, e domain.ScheduleEntry) (domain.DraftContent, error) {
			return domain.DraftContent{CampaignID: c.ID, EntryID: e.ID, Channel: c.Channel, Body: "fresh deals"}, nil
		}).
		Maybe()
}

func (f *executorFixture) approveAll() {
	f.compliance.EXPECT().
		Check(mock.Anything, mock.Anything).
		Return(domain.ComplianceVerdict{Approved: true}, nil).
		Maybe()
}

func forCampaign(id uuid.UUID) interface{} {
	return mock.MatchedBy(func(c domain.ApprovedContent) bool { return c.CampaignID == id })
}

func (f *executorFixture) status(t *testing.T, id uuid.UUID) domain.ScheduleEntry {
	t.Helper()
	e, err := f.schedules.Get(context.Background(), id)
	require.NoError(t, err)
	return e
}

// TestExecutorIsolatesFailures ensures one failing campaign does not block
// the others.
func TestExecutorIsolatesFailures(t *testing.T) {
	cfg := fastExecutorConfig()
	cfg.PublishAttempts = 2
	f := newExecutorFixture(t, cfg)
	f.generateOK()
	f.approveAll()

	a := f.campaign(t, domain.CampaignActive, 0)
	b := f.campaign(t, domain.CampaignActive, 0)
	c := f.campaign(t, domain.CampaignActive, 0)
	ea := f.schedule(t, a, day(10))
	eb := f.schedule(t, b, day(10))
	ec := f.schedule(t, c, day(9))

	f.channel.EXPECT().Publish(mock.Anything, forCampaign(a.ID)).Return(domain.PublishReceipt{ExternalID: "a"}, nil).Once()
	f.channel.EXPECT().Publish(mock.Anything, forCampaign(c.ID)).Return(domain.PublishReceipt{ExternalID: "c"}, nil).Once()
	f.channel.EXPECT().Publish(mock.Anything, forCampaign(b.ID)).Return(domain.PublishReceipt{}, errors.New("upstream 503")).Times(2)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return().Once()

	report, err := f.exec.RunNow(context.Background(), day(10))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Completed)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Results, 3)
	assert.Equal(t, ec.ID, report.Results[0].EntryID, "results follow due order")

	assert.Equal(t, domain.ScheduleCompleted, f.status(t, ea.ID).Status)
	assert.Equal(t, domain.ScheduleCompleted, f.status(t, ec.ID).Status)

	failed := f.status(t, eb.ID)
	assert.Equal(t, domain.ScheduleFailed, failed.Status)
	assert.NotEmpty(t, failed.Reason)
	assert.Contains(t, failed.Reason, "publish")
	assert.Equal(t, 2, failed.Attempts)
	assert.True(t, failed.Retryable)
}

func TestExecutorComplianceRejectionIsNotRetried(t *testing.T) {
	f := newExecutorFixture(t, fastExecutorConfig())
	f.generateOK()
	f.compliance.EXPECT().
		Check(mock.Anything, mock.Anything).
		Return(domain.ComplianceVerdict{Approved: false, Reason: "banned phrase", Violations: []string{"guaranteed results"}}, nil).
		Once()
	f.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(err error) bool {
			var rejected *domain.ComplianceRejectedError
			return errors.As(err, &rejected)
		}), mock.Anything).
		Return().
		Once()

	c := f.campaign(t, domain.CampaignActive, 0)
	e := f.schedule(t, c, day(1))

	report, err := f.exec.RunNow(context.Background(), day(1))
	require.NoError(t, err)
	require.Equal(t, 1, report.Failed)

	failed := f.status(t, e.ID)
	assert.Equal(t, domain.ScheduleFailed, failed.Status)
	assert.Contains(t, failed.Reason, "banned phrase")
	assert.False(t, failed.Retryable)
	assert.Zero(t, failed.Attempts)
}

func TestExecutorContentGenerationFailure(t *testing.T) {
	f := newExecutorFixture(t, fastExecutorConfig())
	f.channel.EXPECT().
		Generate(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DraftContent{}, errors.New("model overloaded")).
		Once()
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return().Once()

	c := f.campaign(t, domain.CampaignActive, 7)
	e := f.schedule(t, c, day(3))

	_, err := f.exec.RunNow(context.Background(), day(3))
	require.NoError(t, err)

	failed := f.status(t, e.ID)
	assert.Equal(t, domain.ScheduleFailed, failed.Status)
	assert.Contains(t, failed.Reason, "generate")
	assert.True(t, failed.Retryable)

	next, err := f.schedules.ListDue(context.Background(), day(10))
	require.NoError(t, err)
	assert.Empty(t, next, "failed executions do not extend the recurrence")
}

func TestExecutorRetriesPublishUntilSuccess(t *testing.T) {
	f := newExecutorFixture(t, fastExecutorConfig())
	f.generateOK()
	f.approveAll()

	c := f.campaign(t, domain.CampaignActive, 0)
	e := f.schedule(t, c, day(1))

	f.channel.EXPECT().Publish(mock.Anything, mock.Anything).
		Return(domain.PublishReceipt{}, domain.NewPublishError(c.ID, domain.ChannelSocial, errors.New("timeout"))).Once()
	f.channel.EXPECT().Publish(mock.Anything, mock.Anything).
		Return(domain.PublishReceipt{ExternalID: "post-1"}, nil).Once()

	report, err := f.exec.RunNow(context.Background(), day(1))
	require.NoError(t, err)
	require.Equal(t, 1, report.Completed)
	require.NotNil(t, report.Results[0].Receipt)
	assert.Equal(t, "post-1", report.Results[0].Receipt.ExternalID)

	done := f.status(t, e.ID)
	assert.Equal(t, domain.ScheduleCompleted, done.Status)
	assert.Equal(t, 2, done.Attempts)
	assert.NotNil(t, done.ExecutedAt)
}

func TestExecutorBoundsPublishWait(t *testing.T) {
	cfg := fastExecutorConfig()
	cfg.PublishAttempts = 2
	cfg.PublishTimeout = 10 * time.Millisecond
	f := newExecutorFixture(t, cfg)
	f.generateOK()
	f.approveAll()
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return().Once()

	c := f.campaign(t, domain.CampaignActive, 0)
	e := f.schedule(t, c, day(1))

	f.channel.EXPECT().Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.ApprovedContent) (domain.PublishReceipt, error) {
			<-ctx.Done()
			return domain.PublishReceipt{}, ctx.Err()
		}).Times(2)

	_, err := f.exec.RunNow(context.Background(), day(1))
	require.NoError(t, err)

	failed := f.status(t, e.ID)
	assert.Equal(t, domain.ScheduleFailed, failed.Status)
	assert.Contains(t, failed.Reason, "deadline exceeded")
	assert.Equal(t, 2, failed.Attempts)
}

// TestExecutorSchedulesNextOccurrence covers a weekly campaign run on day 10.
func TestExecutorSchedulesNextOccurrence(t *testing.T) {
	f := newExecutorFixture(t, fastExecutorConfig())
	f.generateOK()
	f.approveAll()
	f.channel.EXPECT().Publish(mock.Anything, mock.Anything).Return(domain.PublishReceipt{ExternalID: "x"}, nil).Once()

	c := f.campaign(t, domain.CampaignActive, 7)
	f.schedule(t, c, day(10).Add(9*time.Hour))

	report, err := f.exec.RunNow(context.Background(), day(10))
	require.NoError(t, err)
	require.Equal(t, 1, report.Completed)
	require.NotNil(t, report.Results[0].Next)

	due, err := f.schedules.ListDue(context.Background(), day(17))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, c.ID, due[0].CampaignID)
	assert.Equal(t, day(17).Add(9*time.Hour), due[0].ScheduledTime)
	assert.Equal(t, domain.SchedulePending, due[0].Status)
	assert.True(t, due[0].Recurring)
}

func TestExecutorSkipsPausedCampaign(t *testing.T) {
	f := newExecutorFixture(t, fastExecutorConfig())
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return().Once()

	c := f.campaign(t, domain.CampaignPaused, 7)
	e := f.schedule(t, c, day(10))

	_, err := f.exec.RunNow(context.Background(), day(10))
	require.NoError(t, err)

	failed := f.status(t, e.ID)
	assert.Equal(t, domain.ScheduleFailed, failed.Status)
	assert.Contains(t, failed.Reason, "paused")
	assert.False(t, failed.Retryable)

	due, err := f.schedules.ListDue(context.Background(), day(30))
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestExecutorPauseDuringExecutionStopsRecurrence(t *testing.T) {
	f := newExecutorFixture(t, fastExecutorConfig())
	f.generateOK()
	f.approveAll()

	c := f.campaign(t, domain.CampaignActive, 7)
	e := f.schedule(t, c, day(10))

	f.channel.EXPECT().Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.ApprovedContent) (domain.PublishReceipt, error) {
			paused := domain.CampaignPaused
			_, err := f.campaigns.Update(ctx, c.ID, domain.CampaignUpdate{Status: &paused})
			return domain.PublishReceipt{ExternalID: "x"}, err
		}).Once()

	_, err := f.exec.RunNow(context.Background(), day(10))
	require.NoError(t, err)

	assert.Equal(t, domain.ScheduleCompleted, f.status(t, e.ID).Status, "in-flight execution completes")
	due, err := f.schedules.ListDue(context.Background(), day(30))
	require.NoError(t, err)
	assert.Empty(t, due)
}

// TestExecutorNeverOverlapsSameCampaign runs two overlapping RunNow calls and
// checks a campaign never has two publishes in flight.
func TestExecutorNeverOverlapsSameCampaign(t *testing.T) {
	f := newExecutorFixture(t, fastExecutorConfig())
	f.generateOK()
	f.approveAll()

	a := f.campaign(t, domain.CampaignActive, 0)
	b := f.campaign(t, domain.CampaignActive, 0)
	for i := 1; i <= 5; i++ {
		f.schedule(t, a, day(i))
		f.schedule(t, b, day(i))
	}

	var (
		mu       sync.Mutex
		inFlight = map[uuid.UUID]int{}
		overlaps atomic.Int32
		calls    atomic.Int32
	)
	f.channel.EXPECT().Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, content domain.ApprovedContent) (domain.PublishReceipt, error) {
			mu.Lock()
			inFlight[content.CampaignID]++
			if inFlight[content.CampaignID] > 1 {
				overlaps.Add(1)
			}
			mu.Unlock()

			time.Sleep(2 * time.Millisecond)
			calls.Add(1)

			mu.Lock()
			inFlight[content.CampaignID]--
			mu.Unlock()
			return domain.PublishReceipt{ExternalID: content.EntryID.String()}, nil
		})

	var wg sync.WaitGroup
	reports := make([]domain.ExecutionReport, 2)
	for i := range reports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := f.exec.RunNow(context.Background(), day(5))
			assert.NoError(t, err)
			reports[i] = r
		}()
	}
	wg.Wait()

	assert.Zero(t, overlaps.Load())
	assert.Equal(t, int32(10), calls.Load(), "every entry executes exactly once")
	assert.Equal(t, 10, reports[0].Completed+reports[1].Completed)
}
