package espn

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/domain/teams"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/rawjson"
	teamtables "github.com/preston-bernstein/live-sports-service/internal/teams"
	"github.com/preston-bernstein/live-sports-service/internal/timeutil"
)

// NormalizeScoreboard converts a team-sport scoreboard document (baseball, football,
// basketball) into games. Any malformed event fails the whole batch.
func NormalizeScoreboard(doc rawjson.Object, sport sports.Sport, resolver TeamResolver, now time.Time, logger *slog.Logger) ([]games.Game, error) {
	events, err := doc.Objects("events")
	if err != nil {
		return nil, err
	}

	out := make([]games.Game, 0, len(events))
	for _, event := range events {
		game, keep, err := normalizeEvent(event, sport, resolver, now, logger)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, game)
		}
	}
	return out, nil
}

func firstCompetition(event rawjson.Object) (rawjson.Object, error) {
	competitions, err := event.Objects("competitions")
	if err != nil {
		return nil, err
	}
	if len(competitions) == 0 {
		return nil, &rawjson.ParseError{Field: "competitions", Reason: "is empty"}
	}
	return competitions[0], nil
}

// competitionStatus returns the status object, the raw code and the mapped status.
func competitionStatus(competition rawjson.Object) (rawjson.Object, string, games.Status, error) {
	statusObj, err := competition.Object("status")
	if err != nil {
		return nil, "", games.Invalid, err
	}
	statusType, err := statusObj.Object("type")
	if err != nil {
		return nil, "", games.Invalid, err
	}
	code, err := statusType.String("name")
	if err != nil {
		return nil, "", games.Invalid, err
	}
	status, err := MapStatus(code)
	if err != nil {
		return nil, "", games.Invalid, err
	}
	return statusObj, code, status, nil
}

// homeAndAway splits the two competitors. An explicit homeAway marker wins;
// otherwise the first competitor is home.
func homeAndAway(competition rawjson.Object) (rawjson.Object, rawjson.Object, error) {
	competitors, err := competition.Objects("competitors")
	if err != nil {
		return nil, nil, err
	}
	if len(competitors) != 2 {
		return nil, nil, &rawjson.ParseError{
			Field:  "competitors",
			Reason: fmt.Sprintf("expected exactly 2 entries, got %d", len(competitors)),
		}
	}
	home, away := competitors[0], competitors[1]
	if home.StringOr("homeAway", "") == "away" || away.StringOr("homeAway", "") == "home" {
		home, away = away, home
	}
	return home, away, nil
}

func scoreboardOrdinal(period uint64, status games.Status, code string) string {
	if code == statusHalftime {
		return "HALFTIME"
	}
	ordinal := timeutil.Ordinal(period)
	if status == games.Intermission {
		ordinal += " INT"
	}
	return ordinal
}

func resolveCompetitor(resolver TeamResolver, sport sports.Sport, competitor rawjson.Object) (teams.Team, error) {
	raw, err := competitor.Object("team")
	if err != nil {
		return teams.Team{}, err
	}
	id, err := raw.UintOrString("id")
	if err != nil {
		return teams.Team{}, err
	}
	if resolver == nil {
		return teamtables.Synthesize(raw)
	}
	return resolver.LookupOrCreate(sport, id, raw)
}

func normalizeEvent(event rawjson.Object, sport sports.Sport, resolver TeamResolver, now time.Time, logger *slog.Logger) (games.Game, bool, error) {
	competition, err := firstCompetition(event)
	if err != nil {
		return games.Game{}, false, err
	}
	homeRaw, awayRaw, err := homeAndAway(competition)
	if err != nil {
		return games.Game{}, false, err
	}
	statusObj, code, status, err := competitionStatus(competition)
	if err != nil {
		return games.Game{}, false, err
	}
	if status == games.Invalid {
		return games.Game{}, false, nil
	}

	start, err := competition.Time("date", timeutil.ProviderLayout)
	if err != nil {
		return games.Game{}, false, err
	}
	if hours := timeutil.HoursApart(now, start); hours > scoreboardWindowHours {
		logging.Debug(logger, "skipping event outside window",
			logging.FieldSport, sport.String(),
			logging.FieldHours, hours,
		)
		return games.Game{}, false, nil
	}

	period, err := statusObj.Uint("period")
	if err != nil {
		return games.Game{}, false, err
	}

	home, err := resolveCompetitor(resolver, sport, homeRaw)
	if err != nil {
		return games.Game{}, false, err
	}
	away, err := resolveCompetitor(resolver, sport, awayRaw)
	if err != nil {
		return games.Game{}, false, err
	}

	gameID, err := competition.UintOrString("id")
	if err != nil {
		return games.Game{}, false, err
	}
	homeScore, err := homeRaw.UintOrString("score")
	if err != nil {
		return games.Game{}, false, err
	}
	awayScore, err := awayRaw.UintOrString("score")
	if err != nil {
		return games.Game{}, false, err
	}

	game := games.Game{
		GameID:    gameID,
		Sport:     sport,
		HomeTeam:  &home,
		AwayTeam:  &away,
		HomeScore: homeScore,
		AwayScore: awayScore,
		Status:    status,
		Period:    period,
		Ordinal:   scoreboardOrdinal(period, status, code),
		StartTime: start,
	}

	extra, err := extraData(competition, statusObj, game)
	if err != nil {
		return games.Game{}, false, err
	}
	game.Extra = extra
	return game, true, nil
}

func extraData(competition, statusObj rawjson.Object, game games.Game) (*games.ExtraData, error) {
	switch game.Sport.Type {
	case sports.Baseball:
		data, err := baseballData(competition, statusObj)
		if err != nil {
			return nil, err
		}
		return games.NewBaseballExtra(data), nil
	case sports.Football:
		return games.NewFootballExtra(footballData(competition, statusObj, game)), nil
	case sports.Basketball:
		return games.NewBasketballExtra(), nil
	default:
		return nil, fmt.Errorf("scoreboard does not carry %s games", game.Sport.Type)
	}
}
