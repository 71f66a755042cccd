package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

// ScheduleService manages schedule entries and campaign activation on top of
// the schedule store.
type ScheduleService struct {
	schedules port.ScheduleStore
	campaigns port.CampaignRepository
	date      port.GameDate
	cfg       configs.Executor
	logger    *slog.Logger
}

func NewScheduleService(schedules port.ScheduleStore, campaigns port.CampaignRepository, date port.GameDate, cfg configs.Executor, logger *slog.Logger) *ScheduleService {
	return &ScheduleService{
		schedules: schedules,
		campaigns: campaigns,
		date:      date,
		cfg:       cfg,
		logger:    logger.With(slog.String("component", "scheduler")),
	}
}

// Create schedules a campaign at the given time. Completed campaigns cannot
// be scheduled.
func (s *ScheduleService) Create(ctx context.Context, campaignID uuid.UUID, at time.Time) (domain.ScheduleEntry, error) {
	campaign, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	if campaign.Status == domain.CampaignCompleted {
		return domain.ScheduleEntry{}, domain.NewCampaignInactiveError(campaign.ID, campaign.Status)
	}
	return s.schedules.Create(ctx, domain.ScheduleRequest{
		CampaignID:    campaign.ID,
		ScheduledTime: at,
		Recurring:     campaign.Recurring(),
	})
}

func (s *ScheduleService) Cancel(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error) {
	return s.schedules.Cancel(ctx, id)
}

func (s *ScheduleService) ListDue(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error) {
	return s.schedules.ListDue(ctx, date)
}

// Upcoming lists pending entries from the current game date over the next
// days.
func (s *ScheduleService) Upcoming(ctx context.Context, days int) ([]domain.ScheduleEntry, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}
	from := domain.DateOf(s.date.CurrentDate())
	return s.schedules.ListRange(ctx, from, from.AddDate(0, 0, days), domain.SchedulePending)
}

// Calendar groups all entries of a month by day (YYYY-MM-DD).
func (s *ScheduleService) Calendar(ctx context.Context, year int, month time.Month) (map[string][]domain.ScheduleEntry, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	entries, err := s.schedules.ListRange(ctx, from, from.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	days := make(map[string][]domain.ScheduleEntry)
	for _, e := range entries {
		key := e.DueDate().Format(time.DateOnly)
		days[key] = append(days[key], e)
	}
	return days, nil
}

// Activate makes a campaign active and schedules its first execution on the
// current game date. The entry is nil when that slot is already taken.
func (s *ScheduleService) Activate(ctx context.Context, campaignID uuid.UUID) (domain.Campaign, *domain.ScheduleEntry, error) {
	campaign, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, nil, err
	}
	if campaign.Status == domain.CampaignCompleted {
		return campaign, nil, domain.NewCampaignInactiveError(campaign.ID, campaign.Status)
	}
	if campaign.Status != domain.CampaignActive {
		active := domain.CampaignActive
		if campaign, err = s.campaigns.Update(ctx, campaignID, domain.CampaignUpdate{Status: &active}); err != nil {
			return domain.Campaign{}, nil, err
		}
	}

	entry, err := s.schedules.Create(ctx, domain.ScheduleRequest{
		CampaignID:    campaign.ID,
		ScheduledTime: domain.DateOf(s.date.CurrentDate()),
		Recurring:     campaign.Recurring(),
	})
	var dup *domain.DuplicateScheduleError
	switch {
	case errors.As(err, &dup):
		return campaign, nil, nil
	case err != nil:
		return campaign, nil, err
	}
	s.logger.Info("campaign activated",
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("entry_id", entry.ID.String()))
	return campaign, &entry, nil
}

// Pause stops a campaign. Entries already executing finish normally and no
// further occurrence is scheduled.
func (s *ScheduleService) Pause(ctx context.Context, campaignID uuid.UUID) (domain.Campaign, error) {
	campaign, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	switch campaign.Status {
	case domain.CampaignPaused:
		return campaign, nil
	case domain.CampaignActive:
	default:
		return campaign, domain.NewCampaignInactiveError(campaign.ID, campaign.Status)
	}
	paused := domain.CampaignPaused
	return s.campaigns.Update(ctx, campaignID, domain.CampaignUpdate{Status: &paused})
}

// Plan pre-creates the occurrences of a recurring campaign over horizonDays
// from the current game date. Slots that are already taken are skipped.
func (s *ScheduleService) Plan(ctx context.Context, campaignID uuid.UUID, horizonDays int) ([]domain.ScheduleEntry, error) {
	campaign, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.Recurring() {
		return nil, fmt.Errorf("campaign %s has no frequency", campaign.ID)
	}
	if horizonDays <= 0 {
		horizonDays = s.cfg.PlanHorizonDays
	}

	start := domain.DateOf(s.date.CurrentDate())
	end := start.AddDate(0, 0, horizonDays)
	var created []domain.ScheduleEntry
	for at := start; at.Before(end); at = at.AddDate(0, 0, campaign.FrequencyDays) {
		entry, err := s.schedules.Create(ctx, domain.ScheduleRequest{
			CampaignID:    campaign.ID,
			ScheduledTime: at,
			Recurring:     true,
		})
		var dup *domain.DuplicateScheduleError
		switch {
		case errors.As(err, &dup):
			continue
		case err != nil:
			return created, err
		}
		created = append(created, entry)
	}
	return created, nil
}

// RescheduleFailed creates one retry entry, RetryDelay after the current game
// date, for every retryable failure within the retention window whose
// campaign is still active.
func (s *ScheduleService) RescheduleFailed(ctx context.Context) (int, error) {
	today := domain.DateOf(s.date.CurrentDate())
	failed, err := s.schedules.ListRetryable(ctx, today.AddDate(0, 0, -s.cfg.RetentionDays))
	if err != nil {
		return 0, fmt.Errorf("list retryable entries: %w", err)
	}

	created := 0
	for _, e := range failed {
		campaign, err := s.campaigns.Get(ctx, e.CampaignID)
		if err != nil || campaign.Status != domain.CampaignActive {
			continue
		}
		id := e.ID
		_, err = s.schedules.Create(ctx, domain.ScheduleRequest{
			CampaignID:    e.CampaignID,
			ScheduledTime: today.Add(s.cfg.RetryDelay),
			Recurring:     e.Recurring,
			RetryOf:       &id,
		})
		var dup *domain.DuplicateScheduleError
		switch {
		case errors.As(err, &dup):
			continue
		case err != nil:
			return created, err
		}
		created++
	}
	if created > 0 {
		s.logger.Info("failed entries rescheduled", slog.Int("count", created))
	}
	return created, nil
}

// Cleanup purges terminal entries older than the retention window.
func (s *ScheduleService) Cleanup(ctx context.Context) (int64, error) {
	before := domain.DateOf(s.date.CurrentDate()).AddDate(0, 0, -s.cfg.RetentionDays)
	n, err := s.schedules.Purge(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("purge entries: %w", err)
	}
	if n > 0 {
		s.logger.Info("old entries purged", slog.Int64("count", n))
	}
	return n, nil
}

// Maintain is the daily clock subscriber for retries and cleanup.
func (s *ScheduleService) Maintain(ctx context.Context, _ time.Time) error {
	_, rerr := s.RescheduleFailed(ctx)
	var cerr error
	if s.cfg.RetentionDays > 0 {
		_, cerr = s.Cleanup(ctx)
	}
	return errors.Join(rerr, cerr)
}
