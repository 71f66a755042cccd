package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campaign-engine/internal/adapter/memory"
	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
)

func testClockConfig() configs.Clock {
	return configs.Clock{
		Slow:      3 * time.Millisecond,
		Medium:    2 * time.Millisecond,
		Fast:      time.Millisecond,
		Speed:     "fast",
		StartDate: "2025-03-01",
	}
}

type dateRecorder struct {
	mu   sync.Mutex
	seen map[time.Time]int
}

func newDateRecorder() *dateRecorder {
	return &dateRecorder{seen: make(map[time.Time]int)}
}

func (r *dateRecorder) record(_ context.Context, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen[date]++
	return nil
}

func (r *dateRecorder) snapshot() map[time.Time]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[time.Time]int, len(r.seen))
	for k, v := range r.seen {
		out[k] = v
	}
	return out
}

func waitForDays(t *testing.T, clock *Clock, after time.Time, days int) {
	t.Helper()
	target := after.AddDate(0, 0, days)
	require.Eventually(t, func() bool {
		return !clock.CurrentDate().Before(target)
	}, 2*time.Second, time.Millisecond)
}

// TestClockNotifiesOncePerDate runs several start/pause/setSpeed cycles and
// checks every crossed date was delivered exactly once, without gaps.
func TestClockNotifiesOncePerDate(t *testing.T) {
	ctx := context.Background()
	rec := newDateRecorder()

	clock := NewClock(memory.NewClockStateStore(), testClockConfig(), discardLogger(), nil)
	clock.Subscribe(rec.record)
	require.NoError(t, clock.Init(ctx))
	start := clock.CurrentDate()

	_, err := clock.Start(ctx)
	require.NoError(t, err)
	waitForDays(t, clock, start, 3)

	_, err = clock.Pause(ctx)
	require.NoError(t, err)
	_, err = clock.SetSpeed(ctx, domain.SpeedSlow)
	require.NoError(t, err)

	resumed := clock.CurrentDate()
	_, err = clock.Start(ctx)
	require.NoError(t, err)
	_, err = clock.Start(ctx) // idempotent
	require.NoError(t, err)
	_, err = clock.SetSpeed(ctx, domain.SpeedMedium)
	require.NoError(t, err)
	waitForDays(t, clock, resumed, 3)

	_, err = clock.Pause(ctx)
	require.NoError(t, err)
	_, err = clock.Pause(ctx) // idempotent
	require.NoError(t, err)

	closeCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, clock.Close(closeCtx))

	end := clock.CurrentDate()
	crossed := int(end.Sub(start).Hours() / 24)
	seen := rec.snapshot()
	require.Len(t, seen, crossed)
	for i := 1; i <= crossed; i++ {
		require.Equal(t, 1, seen[start.AddDate(0, 0, i)], "date %s", start.AddDate(0, 0, i).Format(time.DateOnly))
	}
}

func TestClockDoesNotAdvanceWhilePaused(t *testing.T) {
	ctx := context.Background()
	rec := newDateRecorder()

	clock := NewClock(memory.NewClockStateStore(), testClockConfig(), discardLogger(), nil)
	clock.Subscribe(rec.record)
	require.NoError(t, clock.Init(ctx))
	start := clock.CurrentDate()

	clock.tick(nil)
	time.Sleep(10 * time.Millisecond)

	require.Equal(t, start, clock.CurrentDate())
	require.Empty(t, rec.snapshot())
	require.NoError(t, clock.Close(ctx))
}

func TestClockPersistsState(t *testing.T) {
	ctx := context.Background()
	store := memory.NewClockStateStore()

	clock := NewClock(store, testClockConfig(), discardLogger(), nil)
	require.NoError(t, clock.Init(ctx))
	start := clock.CurrentDate()
	require.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), start)

	_, err := clock.Start(ctx)
	require.NoError(t, err)
	waitForDays(t, clock, start, 2)
	state, err := clock.Pause(ctx)
	require.NoError(t, err)
	require.NoError(t, clock.Close(ctx))

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, state.CurrentDate, saved.CurrentDate)
	require.False(t, saved.Running)
	require.Equal(t, domain.SpeedFast, saved.Speed)
}

func TestClockResumesPersistedRunningState(t *testing.T) {
	ctx := context.Background()
	store := memory.NewClockStateStore()
	persisted := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, domain.GameClockState{
		CurrentDate: persisted,
		Running:     true,
		Speed:       domain.SpeedFast,
	}))

	clock := NewClock(store, testClockConfig(), discardLogger(), nil)
	require.NoError(t, clock.Init(ctx))
	require.True(t, clock.State().Running)
	require.False(t, clock.CurrentDate().Before(persisted))

	waitForDays(t, clock, persisted, 1)
	require.NoError(t, clock.Close(ctx))
	require.False(t, clock.State().Running)
}

func TestClockResumesAfterShutdown(t *testing.T) {
	ctx := context.Background()
	store := memory.NewClockStateStore()

	clock := NewClock(store, testClockConfig(), discardLogger(), nil)
	require.NoError(t, clock.Init(ctx))
	start := clock.CurrentDate()
	_, err := clock.Start(ctx)
	require.NoError(t, err)
	waitForDays(t, clock, start, 2)
	require.NoError(t, clock.Close(ctx))
	stoppedAt := clock.CurrentDate()

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, saved.Running)
	require.Equal(t, stoppedAt, saved.CurrentDate)

	restarted := NewClock(store, testClockConfig(), discardLogger(), nil)
	require.NoError(t, restarted.Init(ctx))
	require.True(t, restarted.State().Running)
	waitForDays(t, restarted, stoppedAt, 1)
	require.NoError(t, restarted.Close(ctx))
}

func TestClockIsolatesFailingSubscribers(t *testing.T) {
	ctx := context.Background()
	rec := newDateRecorder()

	clock := NewClock(memory.NewClockStateStore(), testClockConfig(), discardLogger(), nil)
	clock.Subscribe(func(context.Context, time.Time) error { return errors.New("boom") })
	clock.Subscribe(func(context.Context, time.Time) error { panic("subscriber bug") })
	clock.Subscribe(rec.record)
	require.NoError(t, clock.Init(ctx))
	start := clock.CurrentDate()

	_, err := clock.Start(ctx)
	require.NoError(t, err)
	waitForDays(t, clock, start, 3)
	require.NoError(t, clock.Close(ctx))

	require.GreaterOrEqual(t, len(rec.snapshot()), 3)
}

func TestClockRejectsUnknownSpeed(t *testing.T) {
	ctx := context.Background()
	clock := NewClock(memory.NewClockStateStore(), testClockConfig(), discardLogger(), nil)
	require.NoError(t, clock.Init(ctx))

	_, err := clock.SetSpeed(ctx, domain.GameSpeed("warp"))
	require.Error(t, err)
	require.Equal(t, domain.SpeedFast, clock.State().Speed)
	require.NoError(t, clock.Close(ctx))
}
