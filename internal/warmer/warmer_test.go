package warmer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

type stubGetter struct {
	mu     sync.Mutex
	calls  int
	err    error
	last   []sports.Sport
	notify chan struct{}
}

func (s *stubGetter) Get(ctx context.Context, requested []sports.Sport) (map[sports.Sport][]games.Game, error) {
	s.mu.Lock()
	s.calls++
	s.last = requested
	err := s.err
	s.mu.Unlock()
	if s.notify != nil {
		s.notify <- struct{}{}
	}
	if err != nil {
		return nil, err
	}
	return map[sports.Sport][]games.Game{}, nil
}

func (s *stubGetter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitForCall(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for warm call")
	}
}

func TestWarmerWarmsOnStartAndInterval(t *testing.T) {
	getter := &stubGetter{notify: make(chan struct{})}
	clock := clockwork.NewFakeClock()
	w := New(getter, sports.All(), Config{OnStart: true, Interval: 30 * time.Second}, nil, nil, clock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	waitForCall(t, getter.notify)
	clock.Advance(30 * time.Second)
	waitForCall(t, getter.notify)

	_ = w.Stop(context.Background())

	if got := getter.callCount(); got != 2 {
		t.Fatalf("expected 2 warm calls, got %d", got)
	}
	if len(getter.last) != len(sports.All()) {
		t.Fatalf("expected every sport requested, got %v", getter.last)
	}
	if !w.IsReady() || w.Status().LastSuccess.IsZero() {
		t.Fatalf("expected ready after successful warm, got %+v", w.Status())
	}
}

func TestWarmerDisabledDoesNothing(t *testing.T) {
	getter := &stubGetter{}
	w := New(getter, sports.All(), Config{}, nil, nil, nil)
	w.Start(context.Background())
	if w.ticker != nil || w.started {
		t.Fatalf("expected disabled warmer not to start")
	}
	if !w.IsReady() {
		t.Fatalf("expected disabled warmer to report ready")
	}
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestWarmerStatusTracksFailures(t *testing.T) {
	getter := &stubGetter{err: errors.New("boom")}
	w := New(getter, []sports.Sport{sports.HockeyPro}, Config{OnStart: true}, nil, nil, clockwork.NewFakeClock())
	ctx := context.Background()

	for i := 0; i < maxConsecutiveFailures-1; i++ {
		w.WarmOnce(ctx)
	}
	if !w.IsReady() {
		t.Fatalf("expected ready below failure threshold, got %+v", w.Status())
	}
	w.WarmOnce(ctx)
	status := w.Status()
	if status.IsReady() || status.LastError != "boom" || status.ConsecutiveFailures != maxConsecutiveFailures {
		t.Fatalf("expected unready after repeated failures, got %+v", status)
	}

	getter.mu.Lock()
	getter.err = nil
	getter.mu.Unlock()
	w.WarmOnce(ctx)
	if status := w.Status(); !status.IsReady() || status.ConsecutiveFailures != 0 || status.LastError != "" {
		t.Fatalf("expected failures reset, got %+v", status)
	}
}

func TestWarmerStartAndStopAreIdempotent(t *testing.T) {
	getter := &stubGetter{}
	w := New(getter, nil, Config{Interval: time.Hour}, nil, nil, clockwork.NewFakeClock())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Start(ctx)
	first := w.ticker
	w.Start(ctx)
	if w.ticker != first {
		t.Fatalf("expected second start to no-op")
	}
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestNilWarmer(t *testing.T) {
	var w *Warmer
	w.Start(context.Background())
	if !w.IsReady() {
		t.Fatalf("nil warmer should be ready")
	}
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}
