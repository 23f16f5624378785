// Package aggregator fans sport fetches out to the provider layer and collects
// per-sport results.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/providers"
)

// Result is the outcome of one sport's fetch. Exactly one of Games and Err is meaningful.
type Result struct {
	Games []games.Game
	Err   error
}

// Aggregator dispatches fetches for one or many sports.
type Aggregator struct {
	fetcher providers.SportFetcher
	logger  *slog.Logger
}

func New(fetcher providers.SportFetcher, logger *slog.Logger) *Aggregator {
	return &Aggregator{fetcher: fetcher, logger: logger}
}

// FetchSport fetches and normalizes the current games for a single sport.
func (a *Aggregator) FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	if a == nil || a.fetcher == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return a.fetcher.FetchSport(ctx, sport)
}

// FetchMany fetches every requested sport concurrently. Each sport succeeds or
// fails on its own; a failure, panic or malformed game for one sport never
// affects another.
// Duplicate sports are fetched once.
func (a *Aggregator) FetchMany(ctx context.Context, requested []sports.Sport) map[sports.Sport]Result {
	results := make(map[sports.Sport]Result, len(requested))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	seen := make(map[sports.Sport]bool, len(requested))
	for _, sport := range requested {
		if seen[sport] {
			continue
		}
		seen[sport] = true

		wg.Add(1)
		go func(sport sports.Sport) {
			defer wg.Done()
			start := time.Now()
			res := a.fetchIsolated(ctx, sport)

			logger := logging.FromContext(ctx, a.logger)
			if res.Err != nil {
				logging.Warn(logger, "sport fetch failed",
					logging.FieldSport, sport.String(),
					logging.FieldDurationMS, time.Since(start).Milliseconds(),
					"error", res.Err,
				)
			} else {
				logging.Debug(logger, "sport fetched",
					logging.FieldSport, sport.String(),
					logging.FieldCount, len(res.Games),
					logging.FieldDurationMS, time.Since(start).Milliseconds(),
				)
			}

			mu.Lock()
			results[sport] = res
			mu.Unlock()
		}(sport)
	}
	wg.Wait()
	return results
}

func (a *Aggregator) fetchIsolated(ctx context.Context, sport sports.Sport) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{Err: fmt.Errorf("%s: fetch panicked: %v", sport, rec)}
		}
	}()
	list, err := a.FetchSport(ctx, sport)
	if err != nil {
		return Result{Err: err}
	}
	for _, g := range list {
		if err := g.Validate(); err != nil {
			return Result{Err: fmt.Errorf("%s: %w", sport, err)}
		}
	}
	return Result{Games: list}
}
