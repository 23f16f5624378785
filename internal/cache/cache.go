// Package cache keeps the latest per-sport game snapshots behind a fixed
// freshness window.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/live-sports-service/internal/aggregator"
	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/metrics"
)

// FreshnessWindow is how long a snapshot, or a remembered failure, is served
// before the sport is fetched again.
const FreshnessWindow = 60 * time.Second

// errMissingResult is stored when the fetcher returns no result for a requested sport.
var errMissingResult = errors.New("fetcher returned no result")

// BatchFetcher fetches several sports concurrently with independent results.
type BatchFetcher interface {
	FetchMany(ctx context.Context, requested []sports.Sport) map[sports.Sport]aggregator.Result
}

// Observer is notified after a sport's snapshot is replaced by a successful fetch.
// Notifications run on their own goroutine, detached from the request's
// cancellation, after Get has returned.
type Observer interface {
	Observe(ctx context.Context, sport sports.Sport, snapshot []games.Game, fetchedAt time.Time)
}

// FailedSportError reports that a requested sport's entry is a failure. Remembered
// is true when the failure was cached by an earlier call.
type FailedSportError struct {
	Sport      sports.Sport
	Remembered bool
	Err        error
}

func (e *FailedSportError) Error() string {
	if e.Remembered {
		return fmt.Sprintf("%s: last fetch failed: %v", e.Sport, e.Err)
	}
	return fmt.Sprintf("%s: fetch failed: %v", e.Sport, e.Err)
}

func (e *FailedSportError) Unwrap() error { return e.Err }

type entry struct {
	updated time.Time
	games   []games.Game
	err     error
}

// Cache is a per-sport snapshot cache. The mutex guards map reads and writes
// only; it is never held while fetching.
type Cache struct {
	mu      sync.Mutex
	entries map[sports.Sport]entry

	fetcher   BatchFetcher
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *metrics.Recorder
	observers []Observer
	notifying sync.WaitGroup
}

// Option customizes a Cache.
type Option func(*Cache)

func WithClock(clock clockwork.Clock) Option {
	return func(c *Cache) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

func WithMetrics(recorder *metrics.Recorder) Option {
	return func(c *Cache) { c.metrics = recorder }
}

// WithObservers registers observers called after successful refetches.
func WithObservers(observers ...Observer) Option {
	return func(c *Cache) {
		for _, o := range observers {
			if o != nil {
				c.observers = append(c.observers, o)
			}
		}
	}
}

// New constructs an empty Cache in front of fetcher.
func New(fetcher BatchFetcher, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[sports.Sport]entry),
		fetcher: fetcher,
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the games for every requested sport. Fresh entries are served from
// memory and the rest are fetched concurrently in one batch. If any requested
// sport is, or just became, a failure the whole call fails with
// *FailedSportError; successful refetches are still stored.
//
// Two concurrent calls that both see a stale sport both fetch it; the later
// write wins.
func (c *Cache) Get(ctx context.Context, requested []sports.Sport) (map[sports.Sport][]games.Game, error) {
	requested = dedupe(requested)
	results := make(map[sports.Sport][]games.Game, len(requested))

	stale, err := c.readFresh(requested, results)
	if err != nil {
		return nil, err
	}
	if len(stale) == 0 {
		return results, nil
	}

	var fetched map[sports.Sport]aggregator.Result
	if c.fetcher != nil {
		fetched = c.fetcher.FetchMany(ctx, stale)
	}

	fetchedAt, updated, failure := c.writeBack(stale, fetched, results)

	c.notify(ctx, updated, results, fetchedAt)

	logger := logging.FromContext(ctx, c.logger)
	if failure != nil {
		logging.Error(logger, "sport refetch failed", failure.Err, logging.FieldSport, failure.Sport.String())
		return nil, failure
	}
	return results, nil
}

// notify hands the replaced snapshots to every observer off the caller's
// goroutine. Each observer gets its own copies.
func (c *Cache) notify(ctx context.Context, updated []sports.Sport, results map[sports.Sport][]games.Game, fetchedAt time.Time) {
	if len(updated) == 0 || len(c.observers) == 0 {
		return
	}
	detached := context.WithoutCancel(ctx)
	for _, o := range c.observers {
		o := o
		batch := make(map[sports.Sport][]games.Game, len(updated))
		for _, sport := range updated {
			batch[sport] = slices.Clone(results[sport])
		}
		c.notifying.Add(1)
		go func() {
			defer c.notifying.Done()
			for _, sport := range updated {
				o.Observe(detached, sport, batch[sport], fetchedAt)
			}
		}()
	}
}

// Wait blocks until pending observer notifications finish or ctx is done.
func (c *Cache) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.notifying.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// readFresh copies fresh snapshots into results and returns the sports that need
// a fetch. A fresh failure marker fails the call before anything is fetched.
func (c *Cache) readFresh(requested []sports.Sport, results map[sports.Sport][]games.Game) ([]sports.Sport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	var stale []sports.Sport
	for _, sport := range requested {
		e, ok := c.entries[sport]
		if !ok || now.Sub(e.updated) >= FreshnessWindow {
			c.metrics.RecordCacheLookup(sport.String(), false)
			stale = append(stale, sport)
			continue
		}
		c.metrics.RecordCacheLookup(sport.String(), true)
		if e.err != nil {
			return nil, &FailedSportError{Sport: sport, Remembered: true, Err: e.err}
		}
		results[sport] = slices.Clone(e.games)
	}
	return stale, nil
}

// writeBack stores every fetched result, success or failure, stamped with one
// timestamp. It returns the sports whose snapshots were replaced and the first
// failure in request order.
func (c *Cache) writeBack(stale []sports.Sport, fetched map[sports.Sport]aggregator.Result, results map[sports.Sport][]games.Game) (time.Time, []sports.Sport, *FailedSportError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	var (
		updated []sports.Sport
		failure *FailedSportError
	)
	for _, sport := range stale {
		res, ok := fetched[sport]
		if !ok {
			res = aggregator.Result{Err: errMissingResult}
		}
		if res.Err != nil {
			c.entries[sport] = entry{updated: now, err: res.Err}
			if failure == nil {
				failure = &FailedSportError{Sport: sport, Err: res.Err}
			}
			continue
		}
		snapshot := res.Games
		if snapshot == nil {
			snapshot = []games.Game{}
		}
		c.entries[sport] = entry{updated: now, games: snapshot}
		results[sport] = slices.Clone(snapshot)
		updated = append(updated, sport)
	}
	return now, updated, failure
}

func dedupe(requested []sports.Sport) []sports.Sport {
	out := make([]sports.Sport, 0, len(requested))
	seen := make(map[sports.Sport]bool, len(requested))
	for _, sport := range requested {
		if !seen[sport] {
			seen[sport] = true
			out = append(out, sport)
		}
	}
	return out
}
