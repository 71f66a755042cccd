package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/metrics"
)

// DateSubscriber is handed every game date the clock crosses. Each call runs
// on its own goroutine so a slow subscriber never delays the next tick.
type DateSubscriber func(ctx context.Context, date time.Time) error

// Clock owns the game clock state. While running it advances the current
// date by one day per tick and notifies subscribers exactly once per date.
type Clock struct {
	store   port.ClockStateStore
	cfg     configs.Clock
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	mu          sync.Mutex
	state       domain.GameClockState
	subscribers []DateSubscriber
	stop        chan struct{} // nil while paused; identifies the live loop
	done        chan struct{}
	speed       chan time.Duration

	// work tracks in-flight subscriber calls. They run on ctx, which outlives
	// the request that started the clock.
	work   sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func NewClock(store port.ClockStateStore, cfg configs.Clock, logger *slog.Logger, m *metrics.Metrics) *Clock {
	ctx, cancel := context.WithCancel(context.Background())
	return &Clock{
		store:   store,
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "clock")),
		metrics: m,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Subscribe registers fn for date notifications. Call it before Init.
func (c *Clock) Subscribe(fn DateSubscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Init loads the persisted state, or creates it from configuration on first
// start. A clock persisted as running resumes ticking.
func (c *Clock) Init(ctx context.Context) error {
	state, err := c.store.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrClockStateNotFound):
		date, err := c.cfg.InitialDate(c.now())
		if err != nil {
			return fmt.Errorf("clock start date: %w", err)
		}
		speed := domain.GameSpeed(c.cfg.Speed)
		if !speed.Valid() {
			return fmt.Errorf("unknown game speed %q", c.cfg.Speed)
		}
		state = domain.GameClockState{CurrentDate: date, Speed: speed}
	case err != nil:
		return fmt.Errorf("load clock state: %w", err)
	}

	resume := state.Running
	state.Running = false
	state.CurrentDate = domain.DateOf(state.CurrentDate)

	c.mu.Lock()
	c.state = state
	err = c.persist(ctx)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.logger.Info("clock initialised",
		slog.String("date", state.CurrentDate.Format(time.DateOnly)),
		slog.String("speed", string(state.Speed)),
		slog.Bool("resume", resume))
	if resume {
		_, err = c.Start(ctx)
	}
	return err
}

// State returns a copy of the current clock state.
func (c *Clock) State() domain.GameClockState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentDate implements port.GameDate.
func (c *Clock) CurrentDate() time.Time {
	return c.State().CurrentDate
}

// Start begins advancing the date. It is a no-op when already running.
func (c *Clock) Start(ctx context.Context) (domain.GameClockState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Running {
		return c.state, nil
	}
	interval, err := c.cfg.Interval(string(c.state.Speed))
	if err != nil {
		return c.state, err
	}

	c.state.Running = true
	if err = c.persist(ctx); err != nil {
		c.state.Running = false
		return c.state, err
	}

	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	c.speed = make(chan time.Duration, 1)
	go c.loop(interval, c.stop, c.done, c.speed)

	c.logger.Info("clock started", slog.Duration("interval", interval))
	return c.state, nil
}

// Pause stops advancing and waits for the tick loop to exit. The current date
// is preserved and in-flight subscriber work is not interrupted. A persist
// failure is returned but the clock is paused regardless.
func (c *Clock) Pause(ctx context.Context) (domain.GameClockState, error) {
	state, stopped, err := c.halt(ctx, true)
	if stopped {
		c.logger.Info("clock paused", slog.String("date", state.CurrentDate.Format(time.DateOnly)))
	}
	return state, err
}

// halt stops the tick loop. With persist unset the stored state keeps
// Running, so the next Init resumes the clock.
func (c *Clock) halt(ctx context.Context, persist bool) (domain.GameClockState, bool, error) {
	c.mu.Lock()
	if !c.state.Running {
		state := c.state
		c.mu.Unlock()
		return state, false, nil
	}
	c.state.Running = false
	var err error
	if persist {
		err = c.persist(ctx)
	}
	stop, done := c.stop, c.done
	c.stop, c.done, c.speed = nil, nil, nil
	state := c.state
	c.mu.Unlock()

	close(stop)
	<-done
	return state, true, err
}

// SetSpeed changes the interval per simulated day. A running clock applies it
// from the next tick on; missed dates are never fired retroactively.
func (c *Clock) SetSpeed(ctx context.Context, speed domain.GameSpeed) (domain.GameClockState, error) {
	if !speed.Valid() {
		return c.State(), fmt.Errorf("unknown game speed %q", speed)
	}
	interval, err := c.cfg.Interval(string(speed))
	if err != nil {
		return c.State(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.state.Speed
	c.state.Speed = speed
	if err = c.persist(ctx); err != nil {
		c.state.Speed = prev
		return c.state, err
	}
	if c.state.Running {
		select {
		case <-c.speed:
		default:
		}
		c.speed <- interval
	}
	return c.state, nil
}

// Close stops the tick loop and waits for in-flight subscriber work. The
// stored state is left as is, so a clock running at shutdown resumes on the
// next Init. When ctx expires first, subscriber contexts are cancelled.
func (c *Clock) Close(ctx context.Context) error {
	_, _, err := c.halt(ctx, false)

	idle := make(chan struct{})
	go func() {
		c.work.Wait()
		close(idle)
	}()
	select {
	case <-idle:
	case <-ctx.Done():
		c.cancel()
		<-idle
	}
	c.cancel()
	return err
}

func (c *Clock) loop(interval time.Duration, stop <-chan struct{}, done chan<- struct{}, speed <-chan time.Duration) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case d := <-speed:
			ticker.Reset(d)
		case <-ticker.C:
			c.tick(stop)
		}
	}
}

// tick advances one day if the loop identified by stop is still the live one.
func (c *Clock) tick(stop <-chan struct{}) {
	c.mu.Lock()
	if !c.state.Running || c.stop != stop {
		c.mu.Unlock()
		return
	}
	c.state.CurrentDate = c.state.CurrentDate.AddDate(0, 0, 1)
	if err := c.persist(c.ctx); err != nil {
		c.logger.Error("persist clock state", slog.Any("error", err))
	}
	date := c.state.CurrentDate
	subscribers := slices.Clone(c.subscribers)
	c.mu.Unlock()

	c.metrics.RecordTick(date)
	c.logger.Debug("date advanced", slog.String("date", date.Format(time.DateOnly)))

	for _, fn := range subscribers {
		c.work.Add(1)
		go c.dispatch(fn, date)
	}
}

func (c *Clock) dispatch(fn DateSubscriber, date time.Time) {
	defer c.work.Done()
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("date subscriber panicked",
				slog.String("date", date.Format(time.DateOnly)), slog.Any("panic", r))
		}
	}()
	if err := fn(c.ctx, date); err != nil {
		c.logger.Error("date subscriber failed",
			slog.String("date", date.Format(time.DateOnly)), slog.Any("error", err))
	}
}

// persist saves the state. Callers hold c.mu.
func (c *Clock) persist(ctx context.Context) error {
	c.state.UpdatedAt = c.now().UTC()
	if err := c.store.Save(ctx, c.state); err != nil {
		return fmt.Errorf("save clock state: %w", err)
	}
	return nil
}
