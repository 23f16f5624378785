package scores

import (
	"context"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

// Getter is the read side of the score cache.
type Getter interface {
	Get(ctx context.Context, requested []sports.Sport) (map[sports.Sport][]games.Game, error)
}

// Service coordinates score reads using a Getter.
type Service struct {
	cache Getter
}

// NewService constructs a Service with the provided Getter.
func NewService(cache Getter) *Service {
	return &Service{cache: cache}
}

// Sport returns the current games for a single sport.
func (s *Service) Sport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	byToken, err := s.Many(ctx, []sports.Sport{sport})
	if err != nil {
		return nil, err
	}
	return byToken[sport.String()], nil
}

// Many returns the current games for each requested sport keyed by sport token.
func (s *Service) Many(ctx context.Context, requested []sports.Sport) (map[string][]games.Game, error) {
	results, err := s.cache.Get(ctx, requested)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]games.Game, len(results))
	for sport, list := range results {
		if list == nil {
			list = []games.Game{}
		}
		out[sport.String()] = list
	}
	return out, nil
}

// All returns the current games for every supported sport.
func (s *Service) All(ctx context.Context) (map[string][]games.Game, error) {
	return s.Many(ctx, sports.All())
}
