package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	domainteams "github.com/preston-bernstein/live-sports-service/internal/domain/teams"
	"github.com/preston-bernstein/live-sports-service/internal/providers"
	"github.com/preston-bernstein/live-sports-service/internal/teams"
	"github.com/preston-bernstein/live-sports-service/internal/timeutil"
)

// ProviderName labels logs and metrics for the fixture provider.
const ProviderName = "fixture"

// Provider returns a static set of games useful for local testing and bootstrapping.
type Provider struct {
	tables *teams.Tables
	now    func() time.Time
}

// New creates a fixture provider that draws teams from tables.
func New(tables *teams.Tables) *Provider {
	return &Provider{
		tables: tables,
		now:    time.Now,
	}
}

// FetchSport returns a deterministic slate for sport: one live game and one
// upcoming game for team sports, one live event for golf.
func (p *Provider) FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	_ = ctx
	if !sport.Valid() {
		return nil, &providers.UnsupportedSportError{Sport: sport}
	}

	start := p.now().UTC().Truncate(time.Hour)
	if sport.Type == sports.Golf {
		return []games.Game{golfEvent(start)}, nil
	}

	var roster []domainteams.Team
	if p.tables != nil {
		if table, ok := p.tables.ForSport(sport); ok {
			roster = table.Sorted()
		}
	}
	if len(roster) < 4 {
		return nil, &providers.SportError{Sport: sport, Err: providers.ErrProviderUnavailable}
	}

	live := games.Game{
		GameID:    1001,
		Sport:     sport,
		HomeTeam:  &roster[0],
		AwayTeam:  &roster[1],
		HomeScore: 3,
		AwayScore: 2,
		Status:    games.Active,
		Period:    2,
		Ordinal:   timeutil.Ordinal(2),
		StartTime: start.Add(-1 * time.Hour),
		Extra:     liveExtra(sport),
	}
	upcoming := games.Game{
		GameID:    1002,
		Sport:     sport,
		HomeTeam:  &roster[2],
		AwayTeam:  &roster[3],
		Status:    games.Pregame,
		Ordinal:   timeutil.Ordinal(0),
		StartTime: start.Add(2 * time.Hour),
		Extra:     idleExtra(sport),
	}
	return []games.Game{live, upcoming}, nil
}

func liveExtra(sport sports.Sport) *games.ExtraData {
	switch sport.Type {
	case sports.Hockey:
		return games.NewHockeyExtra(games.HockeyData{HomePowerplay: true, HomePlayers: 5, AwayPlayers: 4})
	case sports.Baseball:
		return games.NewBaseballExtra(games.BaseballData{Balls: 2, Strikes: 1, Outs: 1, IsInningTop: true, OnSecond: true})
	case sports.Football:
		return games.NewFootballExtra(games.FootballData{
			TimeRemaining: "7:45",
			BallPosition:  "OWN 35",
			DownString:    "2nd + 6",
			Possession:    games.PossessionHome,
		})
	default:
		return games.NewBasketballExtra()
	}
}

func idleExtra(sport sports.Sport) *games.ExtraData {
	switch sport.Type {
	case sports.Hockey:
		return games.NewHockeyExtra(games.HockeyData{HomePlayers: 5, AwayPlayers: 5})
	case sports.Baseball:
		return games.NewBaseballExtra(games.BaseballData{})
	case sports.Football:
		return games.NewFootballExtra(games.FootballData{Possession: games.PossessionNone})
	default:
		return games.NewBasketballExtra()
	}
}

func golfEvent(start time.Time) games.Game {
	return games.Game{
		GameID:    2001,
		Sport:     sports.GolfPro,
		Status:    games.Active,
		Ordinal:   "2",
		StartTime: start.Add(-3 * time.Hour),
		Extra: games.NewGolfExtra(games.GolfData{
			EventName: "FIXTURE OPEN",
			Players: []games.GolfPlayer{
				{Name: "JANE DOE", DisplayName: "DOE", Score: "-9", Position: 1},
				{Name: "JOHN SMITH", DisplayName: "SMITH", Score: "-7", Position: 2},
				{Name: "ALEX ROE", DisplayName: "ROE", Score: "-7", Position: 3},
			},
		}),
	}
}
