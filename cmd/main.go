package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"campaign-engine/internal/adapter/channel"
	"campaign-engine/internal/adapter/compliance"
	httpadapter "campaign-engine/internal/adapter/http"
	"campaign-engine/internal/adapter/memory"
	"campaign-engine/internal/adapter/notifier"
	"campaign-engine/internal/adapter/postgres"
	"campaign-engine/internal/adapter/usecase"
	"campaign-engine/internal/config"
	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/db"
	"campaign-engine/internal/metrics"
)

// main loads configuration, wires the stores, channels and use cases, starts
// the game clock and serves the admin API until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("campaign engine stopped", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	notify, flush, err := notifier.New(cfg.Sentry, cfg.Env, logger)
	if err != nil {
		return fmt.Errorf("notifier: %w", err)
	}
	defer flush(2 * time.Second)

	channels, closeChannels, err := openChannels(ctx, cfg, st.metrics)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeChannels(); err != nil {
			logger.Warn("close channels", slog.Any("error", err))
		}
	}()

	rules, err := compliance.LoadRules(cfg.Compliance.RulesFile)
	if err != nil {
		return fmt.Errorf("compliance rules: %w", err)
	}
	checker, err := compliance.NewChecker(rules, logger)
	if err != nil {
		return fmt.Errorf("compliance checker: %w", err)
	}

	policy, err := usecase.NewScoringPolicy(cfg.Rebalancer.Policy, cfg.Rebalancer.AvgOrderValue)
	if err != nil {
		return err
	}

	clock := usecase.NewClock(st.clock, cfg.Clock, logger, m)
	schedules := usecase.NewScheduleService(st.schedules, st.campaigns, clock, cfg.Executor, logger)
	executor := usecase.NewExecutor(usecase.ExecutorDeps{
		Schedules:  st.schedules,
		Campaigns:  st.campaigns,
		Channels:   channels,
		Compliance: checker,
		Notifier:   notify,
	}, cfg.Executor, logger, m)
	rebalancer := usecase.NewRebalancer(usecase.RebalancerDeps{
		Campaigns: st.campaigns,
		Metrics:   st.metrics,
		Policy:    policy,
		Date:      clock,
		Notifier:  notify,
	}, cfg.Rebalancer, logger, m)

	clock.Subscribe(executor.OnDateAdvanced)
	if cfg.Rebalancer.CadenceDays > 0 {
		clock.Subscribe(rebalancer.RunCadence(cfg.Rebalancer.CadenceDays))
	}
	clock.Subscribe(schedules.Maintain)
	if err = clock.Init(ctx); err != nil {
		return fmt.Errorf("init clock: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := clock.Close(closeCtx); err != nil {
			logger.Warn("close clock", slog.Any("error", err))
		}
	}()

	for _, c := range st.seeded {
		if _, _, err := schedules.Activate(ctx, c.ID); err != nil {
			logger.Warn("activate demo campaign", slog.String("campaign", c.Name), slog.Any("error", err))
		}
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Clock:      clock,
		Schedules:  schedules,
		Executor:   executor,
		Rebalancer: rebalancer,
	}, reg, logger, m)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return nil
}

type metricsStore interface {
	port.MetricsSource
	port.MetricsRecorder
}

type stores struct {
	campaigns port.CampaignRepository
	schedules port.ScheduleStore
	clock     port.ClockStateStore
	metrics   metricsStore
	// seeded are demo campaigns inserted on this start; they get a first
	// schedule entry once the clock is up.
	seeded []domain.Campaign
	close  func()
}

func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, error) {
	demo := db.DemoCampaigns(cfg.Rebalancer.PoolBudget, time.Now())

	if !cfg.Store.UsePostgres() {
		logger.Info("using in-memory stores", slog.Int("demo_campaigns", len(demo)))
		return stores{
			campaigns: memory.NewCampaignRepository(demo...),
			schedules: memory.NewScheduleStore(),
			clock:     memory.NewClockStateStore(),
			metrics:   memory.NewMetricsStore(),
			seeded:    demo,
			close:     func() {},
		}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			return stores{}, fmt.Errorf("migrate: %w", err)
		}
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return stores{}, err
	}

	var seeded []domain.Campaign
	if cfg.Psql.Seed {
		n, err := db.Seed(ctx, pool, demo)
		if err != nil {
			pool.Close()
			return stores{}, err
		}
		if n > 0 {
			logger.Info("demo campaigns seeded", slog.Int("count", n))
			seeded = demo
		}
	}
	return stores{
		campaigns: postgres.NewCampaignRepository(pool),
		schedules: postgres.NewScheduleStore(pool),
		clock:     postgres.NewClockStateStore(pool),
		metrics:   postgres.NewMetricsStore(pool),
		seeded:    seeded,
		close:     pool.Close,
	}, nil
}

// openChannels builds the generator and one publisher per channel for the
// configured transport.
func openChannels(ctx context.Context, cfg config.Config, recorder port.MetricsRecorder) (map[domain.Channel]port.Channel, func() error, error) {
	var generator port.ContentGenerator
	switch cfg.Channel.Generator {
	case "template", "":
		generator = channel.NewTemplateGenerator()
	case "genai":
		g, err := channel.NewGenAIGenerator(ctx, cfg.GenAI)
		if err != nil {
			return nil, nil, err
		}
		generator = g
	default:
		return nil, nil, fmt.Errorf("unknown content generator %q", cfg.Channel.Generator)
	}

	all := []domain.Channel{domain.ChannelSocial, domain.ChannelEmail, domain.ChannelSearch}
	publishers := make(map[domain.Channel]port.Publisher, len(all))
	closer := func() error { return nil }

	switch cfg.Channel.Transport {
	case "simulated", "":
		sim := channel.NewSimulatedPublisher(recorder, cfg.Rebalancer.AvgOrderValue, uint64(time.Now().UnixNano()))
		for _, ch := range all {
			publishers[ch] = sim
		}
	case "webhook":
		for ch, p := range channel.NewWebhookPublishers(cfg.Channel) {
			publishers[ch] = p
		}
	case "amqp":
		p, err := channel.NewAMQPPublisher(cfg.AMQP)
		if err != nil {
			return nil, nil, err
		}
		for _, ch := range all {
			publishers[ch] = p.ForChannel(ch)
		}
		closer = p.Close
	default:
		return nil, nil, fmt.Errorf("unknown channel transport %q", cfg.Channel.Transport)
	}

	channels, err := channel.NewRegistry(generator, publishers)
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	return channels, closer, nil
}
