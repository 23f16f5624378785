package statsapi

import (
	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/rawjson"
)

// ApplyLinescore returns game completed with the scores, period, status and
// power-play data from a linescore document. game itself is not modified.
func ApplyLinescore(game games.Game, doc rawjson.Object) (games.Game, error) {
	sides, err := doc.Object("teams")
	if err != nil {
		return games.Game{}, err
	}
	away, err := sides.Object("away")
	if err != nil {
		return games.Game{}, err
	}
	home, err := sides.Object("home")
	if err != nil {
		return games.Game{}, err
	}

	game.AwayScore = away.UintOr("goals", 0)
	game.HomeScore = home.UintOr("goals", 0)

	awayPowerplay, err := away.Bool("powerPlay")
	if err != nil {
		return games.Game{}, err
	}
	homePowerplay, err := home.Bool("powerPlay")
	if err != nil {
		return games.Game{}, err
	}

	period, err := doc.Uint("currentPeriod")
	if err != nil {
		return games.Game{}, err
	}
	game.Period = period
	if period >= 1 {
		game.Ordinal = doc.StringOr("currentPeriodOrdinal", defaultOrdinal)
	}

	clock := doc.StringOr("currentPeriodTimeRemaining", clockPeriodStart)
	status := DeriveStatus(clock, period, game.HomeScore, game.AwayScore)
	if status == games.Intermission {
		game.Ordinal += intermissionLabel
	}
	game.Status = status

	game.Extra = games.NewHockeyExtra(games.HockeyData{
		AwayPowerplay: awayPowerplay,
		HomePowerplay: homePowerplay,
		AwayPlayers:   away.UintOr("numSkaters", defaultSkaters),
		HomePlayers:   home.UintOr("numSkaters", defaultSkaters),
	})
	return game, nil
}

// DeriveStatus maps the literal period clock to a status. Any clock other than
// "Final", "END" or "20:00" leaves the game Pregame.
func DeriveStatus(clock string, period, homeScore, awayScore uint64) games.Status {
	switch {
	case clock == clockFinal:
		return games.End
	case clock == clockEnd:
		if period >= 3 && homeScore != awayScore {
			return games.End
		}
		return games.Intermission
	case clock == clockPeriodStart && period > 1:
		return games.Intermission
	case clock == clockPeriodStart && period >= 1:
		return games.Active
	default:
		return games.Pregame
	}
}
