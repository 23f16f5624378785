// Package warmer optionally pre-populates the cache so the first client request
// after startup, or after a quiet period, is served from memory.
package warmer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/metrics"
)

// maxConsecutiveFailures is how many failed cycles in a row mark the service unready.
const maxConsecutiveFailures = 3

// Getter is the cache read the warmer drives.
type Getter interface {
	Get(ctx context.Context, requested []sports.Sport) (map[sports.Sport][]games.Game, error)
}

// Config controls when the warmer runs. With OnStart false and Interval zero the
// warmer is disabled and refresh stays request-driven.
type Config struct {
	OnStart  bool
	Interval time.Duration
}

// Enabled reports whether the config schedules any warm-up.
func (c Config) Enabled() bool {
	return c.OnStart || c.Interval > 0
}

// Warmer calls Get for a fixed set of sports on start and/or on an interval.
type Warmer struct {
	cache   Getter
	sports  []sports.Sport
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	clock   clockwork.Clock

	ticker   clockwork.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the warm loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop is not failing repeatedly. A warmer that has
// not run yet is ready.
func (s Status) IsReady() bool {
	return s.ConsecutiveFailures < maxConsecutiveFailures
}

// New constructs a Warmer over cache for the given sports.
func New(cache Getter, list []sports.Sport, cfg Config, logger *slog.Logger, recorder *metrics.Recorder, clock clockwork.Clock) *Warmer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Warmer{
		cache:   cache,
		sports:  append([]sports.Sport(nil), list...),
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		clock:   clock,
		done:    make(chan struct{}),
	}
}

// Start runs the configured warm-ups until the context is cancelled or Stop is
// called. It is a no-op when the config is disabled or Start already ran.
func (w *Warmer) Start(ctx context.Context) {
	if w == nil || !w.cfg.Enabled() {
		return
	}
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	var tick <-chan time.Time
	if w.cfg.Interval > 0 {
		w.ticker = w.clock.NewTicker(w.cfg.Interval)
		tick = w.ticker.Chan()
	}

	go func() {
		logging.Info(w.logger, "cache warmer started",
			logging.FieldCount, len(w.sports),
			logging.FieldDurationMS, w.cfg.Interval.Milliseconds(),
		)
		if w.cfg.OnStart {
			w.WarmOnce(ctx)
		}
		if tick == nil {
			return
		}
		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				logging.Info(w.logger, "cache warmer stopped")
				return
			case <-w.done:
				w.stopTicker()
				logging.Info(w.logger, "cache warmer stopped")
				return
			case <-tick:
				w.WarmOnce(ctx)
			}
		}
	}()
}

// Stop halts the warm loop.
func (w *Warmer) Stop(ctx context.Context) error {
	_ = ctx
	if w == nil {
		return nil
	}
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
	return nil
}

// WarmOnce runs a single cache read for every configured sport.
func (w *Warmer) WarmOnce(ctx context.Context) {
	start := w.clock.Now()
	w.recordAttempt(start)

	_, err := w.cache.Get(ctx, w.sports)
	elapsed := w.clock.Since(start)
	w.metrics.RecordWarmCycle(elapsed, err)
	if err != nil {
		logging.Error(w.logger, "cache warm failed", err, logging.FieldDurationMS, elapsed.Milliseconds())
		w.recordFailure(err, start)
		return
	}
	w.recordSuccess(start)
	logging.Info(w.logger, "cache warmed",
		logging.FieldCount, len(w.sports),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

func (w *Warmer) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Warmer) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Warmer) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Warmer) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.status.LastAttempt = at
}

// Status returns a snapshot of the warmer's recent health.
func (w *Warmer) Status() Status {
	if w == nil {
		return Status{}
	}
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}

// IsReady is Status().IsReady; a nil warmer is always ready.
func (w *Warmer) IsReady() bool {
	return w.Status().IsReady()
}
