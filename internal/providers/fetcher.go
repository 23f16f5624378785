package providers

import (
	"context"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

// SportFetcher fetches and normalizes the current games for one sport.
// Implementations must be safe for concurrent use.
type SportFetcher interface {
	FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error)
}

// FetcherFunc adapts a function to SportFetcher.
type FetcherFunc func(ctx context.Context, sport sports.Sport) ([]games.Game, error)

func (f FetcherFunc) FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	return f(ctx, sport)
}

// Router dispatches each sport family to the fetcher that serves it.
type Router struct {
	routes   map[sports.SportType]SportFetcher
	fallback SportFetcher
}

// NewRouter builds a Router. Families without a route use fallback; a nil fallback
// makes unrouted sports fail with UnsupportedSportError.
func NewRouter(fallback SportFetcher, routes map[sports.SportType]SportFetcher) *Router {
	copied := make(map[sports.SportType]SportFetcher, len(routes))
	for family, fetcher := range routes {
		copied[family] = fetcher
	}
	return &Router{routes: copied, fallback: fallback}
}

func (r *Router) FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	if !sport.Valid() {
		return nil, &UnsupportedSportError{Sport: sport}
	}
	if fetcher, ok := r.routes[sport.Type]; ok && fetcher != nil {
		return fetcher.FetchSport(ctx, sport)
	}
	if r.fallback == nil {
		return nil, &UnsupportedSportError{Sport: sport}
	}
	return r.fallback.FetchSport(ctx, sport)
}
