package testutil

import (
	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/domain/teams"
)

// SampleTeam returns a minimal team fixture with the provided id.
func SampleTeam(id uint64, name string) teams.Team {
	return teams.Team{
		ID:             id,
		Location:       "Test",
		Name:           name,
		DisplayName:    teams.DisplayName(name),
		Abbreviation:   "TST",
		PrimaryColor:   "000000",
		SecondaryColor: "ffffff",
	}
}

// SampleGame returns an in-progress game fixture for a team sport.
func SampleGame(id uint64, sport sports.Sport) games.Game {
	home := SampleTeam(1, "Home")
	away := SampleTeam(2, "Away")
	game := games.Game{
		GameID:    id,
		Sport:     sport,
		HomeTeam:  &home,
		AwayTeam:  &away,
		HomeScore: 3,
		AwayScore: 1,
		Status:    games.Active,
		Period:    2,
		Ordinal:   "2nd",
		StartTime: ReferenceTime,
	}
	switch sport.Type {
	case sports.Hockey:
		game.Extra = games.NewHockeyExtra(games.HockeyData{})
	case sports.Baseball:
		game.Extra = games.NewBaseballExtra(games.BaseballData{})
	case sports.Basketball:
		game.Extra = games.NewBasketballExtra()
	case sports.Football:
		game.Extra = games.NewFootballExtra(games.FootballData{Possession: games.PossessionNone})
	case sports.Golf:
		game.HomeTeam, game.AwayTeam = nil, nil
		game.HomeScore, game.AwayScore = 0, 0
		game.Extra = games.NewGolfExtra(games.GolfData{})
	}
	return game
}
