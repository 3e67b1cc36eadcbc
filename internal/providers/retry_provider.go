package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/mlbcal/internal/domain/schedule"
	"github.com/preston-bernstein/mlbcal/internal/domain/teams"
	"github.com/preston-bernstein/mlbcal/internal/logging"
	"github.com/preston-bernstein/mlbcal/internal/metrics"
)

const (
	defaultRetryAttempts = 1
	defaultBackoff       = 500 * time.Millisecond
)

// retrier runs provider calls under a bounded constant backoff and records
// every attempt.
type retrier struct {
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

func newRetrier(logger *slog.Logger, rec *metrics.Recorder, name string, maxAttempts int, delay time.Duration) retrier {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if delay <= 0 {
		delay = defaultBackoff
	}
	return retrier{
		logger:      logger,
		metrics:     rec,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			return backoff.NewConstantBackOff(delay)
		},
	}
}

func retry[T any](ctx context.Context, r retrier, call func(context.Context) (T, error)) (T, error) {
	logger := logging.FromContext(ctx, r.logger)
	attempt := 0

	op := func() (T, error) {
		attempt++
		start := time.Now()
		res, err := call(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err != nil && !retryable(ctx, err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}
	notify := func(err error, wait time.Duration) {
		r.metrics.RecordRetry(r.name)
		logWithProvider(ctx, logger, slog.LevelWarn, r.name, "provider fetch retry",
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"wait", wait,
			"err", err,
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)), ctx)
	res, err := backoff.RetryNotifyWithData[T](op, policy, notify)
	if err != nil && r.maxAttempts > 1 {
		logWithProvider(ctx, logger, slog.LevelWarn, r.name, "provider fetch failed",
			"attempts", attempt,
			"err", err,
		)
	}
	return res, err
}

// retryable reports whether err may succeed on another attempt. Client errors,
// malformed documents and caller cancellation are final.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, ErrProviderUnavailable) ||
		errors.Is(err, schedule.ErrMissingDates) ||
		errors.Is(err, schedule.ErrMissingGames) {
		return false
	}
	if statusErr, ok := AsStatusError(err); ok {
		return statusErr.Temporary()
	}
	return true
}

// retryingProvider wraps a ScheduleProvider with retry/backoff behavior.
type retryingProvider struct {
	inner ScheduleProvider
	retrier
}

// NewRetryingProvider wraps the given provider with retries. maxAttempts counts
// every call including the first; values <= 0 mean a single attempt.
func NewRetryingProvider(inner ScheduleProvider, logger *slog.Logger, rec *metrics.Recorder, name string, maxAttempts int, delay time.Duration) ScheduleProvider {
	return &retryingProvider{
		inner:   inner,
		retrier: newRetrier(logger, rec, name, maxAttempts, delay),
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, teamID, year int) (schedule.Response, error) {
	if r == nil || r.inner == nil {
		return schedule.Response{}, ErrProviderUnavailable
	}
	return retry(ctx, r.retrier, func(ctx context.Context) (schedule.Response, error) {
		return r.inner.FetchSchedule(ctx, teamID, year)
	})
}

// retryingTeamProvider wraps a TeamProvider with the same policy.
type retryingTeamProvider struct {
	inner TeamProvider
	retrier
}

// NewRetryingTeamProvider wraps the given team provider with retries.
func NewRetryingTeamProvider(inner TeamProvider, logger *slog.Logger, rec *metrics.Recorder, name string, maxAttempts int, delay time.Duration) TeamProvider {
	return &retryingTeamProvider{
		inner:   inner,
		retrier: newRetrier(logger, rec, name, maxAttempts, delay),
	}
}

func (r *retryingTeamProvider) FetchTeams(ctx context.Context, season int) ([]teams.Team, error) {
	if r == nil || r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return retry(ctx, r.retrier, func(ctx context.Context) ([]teams.Team, error) {
		return r.inner.FetchTeams(ctx, season)
	})
}
