package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/providers"
)

// StaticFetcher returns canned games or errors per sport and counts calls.
// Sports with neither entry return an empty list.
type StaticFetcher struct {
	Games map[sports.Sport][]games.Game
	Errs  map[sports.Sport]error

	mu    sync.Mutex
	calls map[sports.Sport]int
}

func (f *StaticFetcher) FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	_ = ctx
	f.mu.Lock()
	if f.calls == nil {
		f.calls = make(map[sports.Sport]int)
	}
	f.calls[sport]++
	f.mu.Unlock()

	if err := f.Errs[sport]; err != nil {
		return nil, err
	}
	if list, ok := f.Games[sport]; ok {
		return list, nil
	}
	return []games.Game{}, nil
}

// Calls returns how many times sport was fetched.
func (f *StaticFetcher) Calls(sport sports.Sport) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[sport]
}

// UnavailableFetcher returns ErrProviderUnavailable for every sport.
type UnavailableFetcher struct{}

func (UnavailableFetcher) FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	_ = ctx
	return nil, &providers.SportError{Sport: sport, Err: providers.ErrProviderUnavailable}
}

// StubCache implements the cache read contract with canned results.
type StubCache struct {
	Results map[sports.Sport][]games.Game
	Err     error

	mu        sync.Mutex
	Requested [][]sports.Sport
}

func (c *StubCache) Get(ctx context.Context, requested []sports.Sport) (map[sports.Sport][]games.Game, error) {
	_ = ctx
	c.mu.Lock()
	c.Requested = append(c.Requested, requested)
	c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	out := make(map[sports.Sport][]games.Game, len(requested))
	for _, sport := range requested {
		out[sport] = c.Results[sport]
	}
	return out, nil
}
