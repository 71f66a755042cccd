package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/getsentry/sentry-go"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/port"
)

// New returns a Sentry notifier when a DSN is configured and a log notifier
// otherwise. flush drains pending events and is safe to call in both cases.
func New(cfg configs.Sentry, environment string, logger *slog.Logger) (n port.Notifier, flush func(time.Duration), err error) {
	if cfg.DSN == "" {
		return NewLog(logger), func(time.Duration) {}, nil
	}
	s, err := NewSentry(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      environment,
		TracesSampleRate: cfg.TracesSampleRate,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, func(d time.Duration) { s.Flush(d) }, nil
}

// Log reports failures as error logs.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger.With(slog.String("component", "notifier"))}
}

func (l *Log) Notify(ctx context.Context, err error, tags map[string]string) {
	attrs := []any{slog.Any("error", err)}
	for _, k := range slices.Sorted(maps.Keys(tags)) {
		attrs = append(attrs, slog.String(k, tags[k]))
	}
	l.logger.ErrorContext(ctx, "operator alert", attrs...)
}

// Sentry captures failures as Sentry exceptions tagged with the failure
// context.
type Sentry struct {
	hub *sentry.Hub
	log *Log
}

func NewSentry(opts sentry.ClientOptions, logger *slog.Logger) (*Sentry, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("init sentry: %w", err)
	}
	return &Sentry{
		hub: sentry.NewHub(client, sentry.NewScope()),
		log: NewLog(logger),
	}, nil
}

func (s *Sentry) Notify(ctx context.Context, err error, tags map[string]string) {
	s.log.Notify(ctx, err, tags)

	hub := s.hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetTags(tags)
	})
	hub.CaptureException(err)
}

// Flush waits up to timeout for queued events to be sent.
func (s *Sentry) Flush(timeout time.Duration) bool {
	return s.hub.Flush(timeout)
}
