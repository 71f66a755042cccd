package usecase

import (
	"context"
	"errors"
	"time"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

// RetryPolicy bounds publish attempts. Only publish failures are retried;
// compliance rejections and generation failures are returned immediately.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// Backoff returns the wait after the given failed attempt.
	Backoff func(attempt int) time.Duration
	// Timeout bounds a single attempt. Zero means no per-attempt bound.
	Timeout time.Duration
	// OnAttempt observes every attempt outcome.
	OnAttempt func(ch domain.Channel, err error)
}

// LinearBackoff waits attempt*base between attempts.
func LinearBackoff(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * base
	}
}

// NewRetryPolicy builds the publish policy from executor configuration.
func NewRetryPolicy(cfg configs.Executor) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: cfg.PublishAttempts,
		Backoff:     LinearBackoff(cfg.PublishBackoff),
		Timeout:     cfg.PublishTimeout,
	}
}

// Publish calls ch.Publish until it succeeds, fails with a non-retryable
// error or runs out of attempts. It returns the number of attempts made.
func (p RetryPolicy) Publish(ctx context.Context, ch port.Channel, content domain.ApprovedContent) (domain.PublishReceipt, int, error) {
	maxAttempts := max(p.MaxAttempts, 1)

	for attempt := 1; ; attempt++ {
		receipt, err := p.attempt(ctx, ch, content)
		if p.OnAttempt != nil {
			p.OnAttempt(content.Channel, err)
		}
		if err == nil {
			return receipt, attempt, nil
		}

		var pubErr *domain.PublishError
		if !errors.As(err, &pubErr) {
			return domain.PublishReceipt{}, attempt, err
		}
		failed := *pubErr
		failed.Attempt = attempt

		if attempt >= maxAttempts {
			return domain.PublishReceipt{}, attempt, &failed
		}
		if err = p.wait(ctx, attempt); err != nil {
			return domain.PublishReceipt{}, attempt, &failed
		}
	}
}

// attempt runs one bounded publish call and normalises transport failures to
// *domain.PublishError.
func (p RetryPolicy) attempt(ctx context.Context, ch port.Channel, content domain.ApprovedContent) (domain.PublishReceipt, error) {
	receipt, err := p.publish(ctx, ch, content)
	if err == nil {
		return receipt, nil
	}

	var (
		rejected *domain.ComplianceRejectedError
		genErr   *domain.ContentGenerationError
		pubErr   *domain.PublishError
	)
	switch {
	case errors.As(err, &rejected), errors.As(err, &genErr), errors.As(err, &pubErr):
		return receipt, err
	case ctx.Err() != nil:
		// the caller gave up; do not retry
		return receipt, err
	default:
		return receipt, domain.NewPublishError(content.CampaignID, content.Channel, err)
	}
}

// publish bounds one call by Timeout even when the channel ignores its
// context. An abandoned call keeps running until the channel returns and its
// result is dropped.
func (p RetryPolicy) publish(ctx context.Context, ch port.Channel, content domain.ApprovedContent) (domain.PublishReceipt, error) {
	if p.Timeout <= 0 {
		return ch.Publish(ctx, content)
	}
	actx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	type result struct {
		receipt domain.PublishReceipt
		err     error
	}
	out := make(chan result, 1)
	go func() {
		receipt, err := ch.Publish(actx, content)
		out <- result{receipt: receipt, err: err}
	}()

	select {
	case r := <-out:
		return r.receipt, r.err
	case <-actx.Done():
		return domain.PublishReceipt{}, actx.Err()
	}
}

func (p RetryPolicy) wait(ctx context.Context, attempt int) error {
	if p.Backoff == nil {
		return ctx.Err()
	}
	d := p.Backoff(attempt)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
