package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingFetcher wraps a SportFetcher with exponential backoff for transient failures.
type retryingFetcher struct {
	inner       SportFetcher
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingFetcher wraps inner with retries. Only Retryable errors are retried; parse
// failures and unknown statuses fail on the first attempt. If maxAttempts/initial are <= 0,
// defaults are used.
func NewRetryingFetcher(inner SportFetcher, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) SportFetcher {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingFetcher{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingFetcher) FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	if r == nil || r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	attempt := 0
	operation := func() ([]games.Game, error) {
		attempt++
		start := time.Now()
		result, err := r.inner.FetchSport(ctx, sport)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
		}
		if err != nil && !Retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return result, err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)), ctx)
	notify := func(err error, delay time.Duration) {
		logger := logging.FromContext(ctx, r.logger)
		logWithProvider(ctx, logger, slog.LevelWarn, r.name, "provider fetch retry",
			logging.FieldSport, sport.String(),
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"err", err,
		)
	}

	result, err := backoff.RetryNotifyWithData(operation, policy, notify)
	if err != nil {
		logWithProvider(ctx, logging.FromContext(ctx, r.logger), slog.LevelWarn, r.name, "provider fetch failed",
			logging.FieldSport, sport.String(),
			"attempts", attempt,
			"err", err,
		)
		return nil, err
	}
	return result, nil
}
