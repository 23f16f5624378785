package statsapi

import (
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/domain/teams"
	"github.com/preston-bernstein/live-sports-service/internal/rawjson"
)

// TeamLookup resolves league team ids against the static table. Unknown ids are
// an error; schedule ids are permanent so nothing is synthesized.
type TeamLookup interface {
	Lookup(sport sports.Sport, id uint64) (teams.Team, error)
}

// ParseSchedule lists today's games from a schedule document. The returned games
// carry teams and start time only; ApplyLinescore fills in the live state.
func ParseSchedule(doc rawjson.Object, sport sports.Sport, lookup TeamLookup) ([]games.Game, error) {
	dates, err := doc.Array("dates")
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return []games.Game{}, nil
	}
	today, err := rawjson.AsObject(dates[0], "dates[0]")
	if err != nil {
		return nil, err
	}
	entries, err := today.Objects("games")
	if err != nil {
		return nil, err
	}

	out := make([]games.Game, 0, len(entries))
	for _, entry := range entries {
		status, err := entry.Object("status")
		if err != nil {
			return nil, err
		}
		state, err := status.String("detailedState")
		if err != nil {
			return nil, err
		}
		if state == postponedState {
			continue
		}

		game, err := scheduledGame(entry, sport, lookup)
		if err != nil {
			return nil, err
		}
		out = append(out, game)
	}
	return out, nil
}

func scheduledGame(entry rawjson.Object, sport sports.Sport, lookup TeamLookup) (games.Game, error) {
	start, err := entry.Time("gameDate", time.RFC3339)
	if err != nil {
		return games.Game{}, err
	}
	gameID, err := entry.Uint("gamePk")
	if err != nil {
		return games.Game{}, err
	}
	sides, err := entry.Object("teams")
	if err != nil {
		return games.Game{}, err
	}
	away, err := sideTeam(sides, "away", sport, lookup)
	if err != nil {
		return games.Game{}, err
	}
	home, err := sideTeam(sides, "home", sport, lookup)
	if err != nil {
		return games.Game{}, err
	}
	return games.Game{
		GameID:    gameID,
		Sport:     sport,
		HomeTeam:  &home,
		AwayTeam:  &away,
		Status:    games.Pregame,
		StartTime: start,
	}, nil
}

func sideTeam(sides rawjson.Object, side string, sport sports.Sport, lookup TeamLookup) (teams.Team, error) {
	entry, err := sides.Object(side)
	if err != nil {
		return teams.Team{}, err
	}
	team, err := entry.Object("team")
	if err != nil {
		return teams.Team{}, err
	}
	id, err := team.Uint("id")
	if err != nil {
		return teams.Team{}, err
	}
	return lookup.Lookup(sport, id)
}
