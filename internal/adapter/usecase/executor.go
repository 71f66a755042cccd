package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/metrics"
)

// ExecutorDeps are the collaborators of the Executor.
type ExecutorDeps struct {
	Schedules  port.ScheduleStore
	Campaigns  port.CampaignRepository
	Channels   map[domain.Channel]port.Channel
	Compliance port.ComplianceChecker
	Notifier   port.Notifier
}

// Executor turns due schedule entries into campaign executions. Distinct
// campaigns run concurrently; entries of the same campaign never overlap,
// even across concurrent RunNow calls.
type Executor struct {
	deps    ExecutorDeps
	retry   RetryPolicy
	workers int
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	locks   keyedMutex
}

func NewExecutor(deps ExecutorDeps, cfg configs.Executor, logger *slog.Logger, m *metrics.Metrics) *Executor {
	retry := NewRetryPolicy(cfg)
	retry.OnAttempt = func(ch domain.Channel, err error) {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		m.RecordPublishAttempt(string(ch), outcome)
	}
	return &Executor{
		deps:    deps,
		retry:   retry,
		workers: max(cfg.MaxConcurrent, 1),
		logger:  logger.With(slog.String("component", "executor")),
		metrics: m,
		now:     time.Now,
		locks:   keyedMutex{locks: make(map[uuid.UUID]*refMutex)},
	}
}

// OnDateAdvanced is the clock subscriber. It runs every entry due on date.
func (e *Executor) OnDateAdvanced(ctx context.Context, date time.Time) error {
	_, err := e.RunNow(ctx, date)
	return err
}

// RunNow executes all pending entries dated on or before date. Per-entry
// failures are recorded on the entry and in the report; only a failure to
// list due entries is returned as an error.
func (e *Executor) RunNow(ctx context.Context, date time.Time) (domain.ExecutionReport, error) {
	report := domain.ExecutionReport{Date: domain.DateOf(date)}

	entries, err := e.deps.Schedules.ListDue(ctx, date)
	if err != nil {
		return report, fmt.Errorf("list due entries: %w", err)
	}
	if len(entries) == 0 {
		return report, nil
	}

	// group by campaign, keeping the due order inside each group
	var order []uuid.UUID
	groups := make(map[uuid.UUID][]int)
	for i, entry := range entries {
		if _, ok := groups[entry.CampaignID]; !ok {
			order = append(order, entry.CampaignID)
		}
		groups[entry.CampaignID] = append(groups[entry.CampaignID], i)
	}

	results := make([]domain.ExecutionResult, len(entries))
	var g errgroup.Group
	g.SetLimit(e.workers)
	for _, campaignID := range order {
		idx := groups[campaignID]
		g.Go(func() error {
			unlock := e.locks.Lock(campaignID)
			defer unlock()
			for _, i := range idx {
				results[i] = e.execute(ctx, entries[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Results = results
	for _, r := range results {
		switch {
		case r.Skipped:
			report.Skipped++
		case r.Status == domain.ScheduleCompleted:
			report.Completed++
		case r.Status == domain.ScheduleFailed:
			report.Failed++
		}
	}
	e.logger.Info("executor run finished",
		slog.String("date", report.Date.Format(time.DateOnly)),
		slog.Int("completed", report.Completed),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped))
	return report, nil
}

// execute runs one entry and records its outcome.
func (e *Executor) execute(ctx context.Context, entry domain.ScheduleEntry) domain.ExecutionResult {
	res := domain.ExecutionResult{EntryID: entry.ID, CampaignID: entry.CampaignID}
	log := e.logger.With(slog.String("entry_id", entry.ID.String()), slog.String("campaign_id", entry.CampaignID.String()))

	claimed, err := e.deps.Schedules.MarkExecuting(ctx, entry.ID)
	if err != nil {
		// another run claimed or cancelled the entry
		log.Debug("entry not claimed", slog.Any("error", err))
		res.Skipped = true
		res.Reason = err.Error()
		return res
	}

	started := e.now()
	e.metrics.ExecutionStarted()

	// bookkeeping must survive a cancelled run context
	bctx := context.WithoutCancel(ctx)

	campaign, receipt, attempts, runErr := e.run(ctx, claimed)
	res.Attempts = attempts
	channel := string(campaign.Channel)
	if channel == "" {
		channel = "unknown"
	}

	if runErr != nil {
		out := domain.Outcome{Reason: runErr.Error(), Attempts: attempts, Retryable: retryable(runErr)}
		if _, err = e.deps.Schedules.MarkFailed(bctx, claimed.ID, out); err != nil {
			log.Error("mark entry failed", slog.Any("error", err))
		}
		res.Status = domain.ScheduleFailed
		res.Reason = out.Reason
		e.metrics.RecordExecution(channel, string(res.Status), e.now().Sub(started))
		log.Warn("execution failed", slog.Any("error", runErr), slog.Int("attempts", attempts))
		e.notify(bctx, claimed, campaign, runErr)
		return res
	}

	if _, err = e.deps.Schedules.MarkCompleted(bctx, claimed.ID, domain.Outcome{Attempts: attempts}); err != nil {
		log.Error("mark entry completed", slog.Any("error", err))
	}
	res.Status = domain.ScheduleCompleted
	res.Receipt = &receipt
	e.metrics.RecordExecution(channel, string(res.Status), e.now().Sub(started))
	log.Info("execution completed", slog.String("external_id", receipt.ExternalID), slog.Int("attempts", attempts))

	res.Next = e.scheduleNext(bctx, claimed, log)
	return res
}

// run executes the pipeline generate -> compliance -> publish.
func (e *Executor) run(ctx context.Context, entry domain.ScheduleEntry) (domain.Campaign, domain.PublishReceipt, int, error) {
	var receipt domain.PublishReceipt

	campaign, err := e.deps.Campaigns.Get(ctx, entry.CampaignID)
	if err != nil {
		return campaign, receipt, 0, domain.NewExecutionError(entry, domain.StepLoad, err)
	}
	if campaign.Status != domain.CampaignActive {
		return campaign, receipt, 0, domain.NewExecutionError(entry, domain.StepLoad,
			domain.NewCampaignInactiveError(campaign.ID, campaign.Status))
	}
	ch, ok := e.deps.Channels[campaign.Channel]
	if !ok {
		return campaign, receipt, 0, domain.NewExecutionError(entry, domain.StepLoad,
			fmt.Errorf("no channel registered for %q", campaign.Channel))
	}

	draft, err := ch.Generate(ctx, campaign, entry)
	if err != nil {
		var genErr *domain.ContentGenerationError
		if !errors.As(err, &genErr) {
			err = domain.NewContentGenerationError(campaign.ID, campaign.Channel, err)
		}
		return campaign, receipt, 0, domain.NewExecutionError(entry, domain.StepGenerate, err)
	}

	verdict, err := e.deps.Compliance.Check(ctx, draft)
	if err != nil {
		return campaign, receipt, 0, domain.NewExecutionError(entry, domain.StepCompliance, err)
	}
	if !verdict.Approved {
		return campaign, receipt, 0, domain.NewExecutionError(entry, domain.StepCompliance,
			domain.NewComplianceRejectedError(campaign.ID, verdict))
	}

	approved := domain.ApprovedContent{DraftContent: draft, ApprovedAt: e.now().UTC()}
	receipt, attempts, err := e.retry.Publish(ctx, ch, approved)
	if err != nil {
		return campaign, receipt, attempts, domain.NewExecutionError(entry, domain.StepPublish, err)
	}
	return campaign, receipt, attempts, nil
}

// scheduleNext creates the next occurrence of a recurring campaign. The
// campaign is re-read so a pause during execution stops the chain.
func (e *Executor) scheduleNext(ctx context.Context, entry domain.ScheduleEntry, log *slog.Logger) *domain.ScheduleEntry {
	campaign, err := e.deps.Campaigns.Get(ctx, entry.CampaignID)
	if err != nil {
		log.Error("reload campaign for recurrence", slog.Any("error", err))
		return nil
	}
	if !campaign.Recurring() || campaign.Status != domain.CampaignActive {
		return nil
	}

	next, err := e.deps.Schedules.Create(ctx, domain.ScheduleRequest{
		CampaignID:    campaign.ID,
		ScheduledTime: entry.ScheduledTime.AddDate(0, 0, campaign.FrequencyDays),
		Recurring:     true,
	})
	var dup *domain.DuplicateScheduleError
	switch {
	case errors.As(err, &dup):
		log.Debug("next occurrence already scheduled", slog.Time("due", dup.DueDate))
		return nil
	case err != nil:
		log.Error("schedule next occurrence", slog.Any("error", err))
		return nil
	}
	log.Info("next occurrence scheduled", slog.String("next_entry_id", next.ID.String()),
		slog.String("due", next.DueDate().Format(time.DateOnly)))
	return &next
}

func (e *Executor) notify(ctx context.Context, entry domain.ScheduleEntry, campaign domain.Campaign, err error) {
	if e.deps.Notifier == nil {
		return
	}
	tags := map[string]string{
		"entry_id":    entry.ID.String(),
		"campaign_id": entry.CampaignID.String(),
		"channel":     string(campaign.Channel),
	}
	var execErr *domain.ExecutionError
	if errors.As(err, &execErr) {
		tags["step"] = string(execErr.Step)
	}
	e.deps.Notifier.Notify(ctx, err, tags)
}

// retryable reports whether a failed entry may be retried automatically.
func retryable(err error) bool {
	var (
		rejected *domain.ComplianceRejectedError
		inactive *domain.CampaignInactiveError
		missing  *domain.CampaignNotFoundError
	)
	return !errors.As(err, &rejected) && !errors.As(err, &inactive) && !errors.As(err, &missing)
}

// keyedMutex hands out one mutex per campaign and forgets it once unused.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) Lock(id uuid.UUID) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[id]
	if !ok {
		l = &refMutex{}
		k.locks[id] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
