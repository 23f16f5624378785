package scores

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

type stubCache struct {
	results   map[sports.Sport][]games.Game
	err       error
	requested []sports.Sport
}

func (s *stubCache) Get(ctx context.Context, requested []sports.Sport) (map[sports.Sport][]games.Game, error) {
	_ = ctx
	s.requested = requested
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[sports.Sport][]games.Game, len(requested))
	for _, sport := range requested {
		out[sport] = s.results[sport]
	}
	return out, nil
}

func TestServiceSport(t *testing.T) {
	cache := &stubCache{results: map[sports.Sport][]games.Game{
		sports.HockeyPro: {{GameID: 1, Sport: sports.HockeyPro}},
	}}
	svc := NewService(cache)

	list, err := svc.Sport(context.Background(), sports.HockeyPro)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(list) != 1 || list[0].GameID != 1 {
		t.Fatalf("unexpected games %+v", list)
	}
	if len(cache.requested) != 1 || cache.requested[0] != sports.HockeyPro {
		t.Fatalf("unexpected request %v", cache.requested)
	}
}

func TestServiceManyKeysByTokenAndFillsEmpty(t *testing.T) {
	cache := &stubCache{results: map[sports.Sport][]games.Game{
		sports.FootballCollegiate: {{GameID: 7, Sport: sports.FootballCollegiate}},
	}}
	svc := NewService(cache)

	out, err := svc.Many(context.Background(), []sports.Sport{sports.FootballCollegiate, sports.GolfPro})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(out["college-football"]) != 1 {
		t.Fatalf("expected college-football games, got %+v", out)
	}
	golf, ok := out["golf"]
	if !ok || golf == nil || len(golf) != 0 {
		t.Fatalf("expected empty non-nil golf list, got %#v", golf)
	}
}

func TestServiceAllRequestsEverySport(t *testing.T) {
	cache := &stubCache{}
	svc := NewService(cache)

	out, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(cache.requested) != len(sports.All()) || len(out) != len(sports.All()) {
		t.Fatalf("expected every sport, got %d requested %d returned", len(cache.requested), len(out))
	}
}

func TestServicePropagatesCacheError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&stubCache{err: boom})

	if _, err := svc.Sport(context.Background(), sports.BaseballPro); !errors.Is(err, boom) {
		t.Fatalf("expected cache error, got %v", err)
	}
}
