package espn

import (
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/rawjson"
	"github.com/preston-bernstein/live-sports-service/internal/timeutil"
)

const (
	evenPar       = "E"
	pairNameChars = 5
)

// rawDataLine matches "<anything> <name>/<name> <score>" rows in a team leaderboard blob.
var rawDataLine = regexp.MustCompile(`.*\s([a-zA-Z ]+)/([a-zA-Z ]+)\s*(\S+)`)

var eventAliases = map[string]string{
	"SHRINERS CHILDREN'S OPEN":                       "SHRINERS OPEN",
	"BUTTERFIELD BERMUDA CHAMPIONSHIP":               "BERMUDA CHAMP",
	"WORLD WIDE TECHNOLOGY CHAMPIONSHIP AT MAYAKOBA": "WWT CHAMP",
	"FARMERS INSURANCE OPEN":                         "FARMERS OPEN",
	"SONY OPEN IN HAWAII":                            "SONY OPEN",
	"AT&T PEBBLE BEACH PRO-AM":                       "PEBBLE BEACH",
	"WASTE MANAGEMENT PHOENIX OPEN":                  "WM PHOENIX",
	"CORALES PUNTACANA CHAMPIONSHIP":                 "PUTACANA CHAMP",
	"VALERO TEXAS OPEN":                              "VALERO OPEN",
	"RBC CANADIAN OPEN":                              "RBC CANADIAN",
	"GENESIS SCOTTISH OPEN":                          "SCOTTISH OPEN",
	"THE CJ CUP IN SOUTH CAROLINA":                   "CJ CUP",
	"CADENCE BANK HOUSTON OPEN":                      "HOUSTON OPEN",
}

var eventStopWords = map[string]bool{
	"TOURNAMENT":   true,
	"CHAMPIONSHIP": true,
	"CHALLENGE":    true,
	"CLASSIC":      true,
	"INVITATIONAL": true,
}

var nameSuffixes = map[string]bool{
	"JR.": true, "JR": true,
	"SR.": true, "SR": true,
	"II": true, "III": true, "IV": true, "V": true, "VI": true,
}

// NormalizeGolf converts a leaderboard document into one game per event.
func NormalizeGolf(doc rawjson.Object, now time.Time, logger *slog.Logger) ([]games.Game, error) {
	events, err := doc.Objects("events")
	if err != nil {
		return nil, err
	}

	out := make([]games.Game, 0, len(events))
	for _, event := range events {
		game, keep, err := normalizeGolfEvent(event, now, logger)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, game)
		}
	}
	return out, nil
}

func normalizeGolfEvent(event rawjson.Object, now time.Time, logger *slog.Logger) (games.Game, bool, error) {
	competition, err := firstCompetition(event)
	if err != nil {
		return games.Game{}, false, err
	}
	competitors, err := competition.Objects("competitors")
	if err != nil {
		return games.Game{}, false, err
	}
	statusObj, _, status, err := competitionStatus(competition)
	if err != nil {
		return games.Game{}, false, err
	}
	if status == games.Invalid {
		return games.Game{}, false, nil
	}

	period, err := statusObj.Uint("period")
	if err != nil {
		return games.Game{}, false, err
	}
	gameID, err := competition.UintOrString("id")
	if err != nil {
		return games.Game{}, false, err
	}

	start, err := eventTime(competition, competitors)
	if err != nil {
		return games.Game{}, false, err
	}
	if hours := timeutil.HoursApart(now, start); hours > golfWindowHours && status != games.Active && status != games.End {
		logging.Debug(logger, "skipping golf event outside window",
			logging.FieldGameID, gameID,
			logging.FieldHours, hours,
			"status", status.String(),
		)
		return games.Game{}, false, nil
	}

	scoring, err := competition.Object("scoringSystem")
	if err != nil {
		return games.Game{}, false, err
	}
	scoringName, err := scoring.String("name")
	if err != nil {
		return games.Game{}, false, err
	}

	// Upstream leaves a finished round Active until the next round's tee times post.
	if status == games.Active && start.After(now) {
		status = games.End
	}

	var players []games.GolfPlayer
	if scoringName == teamstroke {
		if blob, err := competition.String("rawData"); err == nil {
			if status == games.Active && strings.Contains(blob, "COMPLETE") {
				status = games.End
			}
			players = playersFromRawData(blob)
		} else {
			players, err = collectPlayers(competitors, teamstrokePlayer)
			if err != nil {
				return games.Game{}, false, err
			}
		}
	} else {
		players, err = collectPlayers(competitors, strokePlayer)
		if err != nil {
			return games.Game{}, false, err
		}
	}

	shortName, err := event.String("shortName")
	if err != nil {
		return games.Game{}, false, err
	}

	return games.Game{
		GameID:    gameID,
		Sport:     sports.GolfPro,
		Status:    status,
		Ordinal:   strconv.FormatUint(period, 10),
		StartTime: start,
		Extra: games.NewGolfExtra(games.GolfData{
			EventName: EventName(shortName),
			Players:   topPlayers(players),
		}),
	}, true, nil
}

// eventTime is the earliest tee time across competitors, or the competition date
// when no tee times are posted.
func eventTime(competition rawjson.Object, competitors []rawjson.Object) (time.Time, error) {
	var earliest time.Time
	for _, competitor := range competitors {
		status, err := competitor.Object("status")
		if err != nil {
			return time.Time{}, err
		}
		if _, err := status.String("teeTime"); err != nil {
			continue
		}
		tee, err := status.Time("teeTime", timeutil.ProviderLayout)
		if err != nil {
			return time.Time{}, err
		}
		if earliest.IsZero() || tee.Before(earliest) {
			earliest = tee
		}
	}
	if !earliest.IsZero() {
		return earliest, nil
	}
	return competition.Time("date", timeutil.ProviderLayout)
}

func collectPlayers(competitors []rawjson.Object, build func(rawjson.Object) (games.GolfPlayer, error)) ([]games.GolfPlayer, error) {
	players := make([]games.GolfPlayer, 0, len(competitors))
	for _, competitor := range competitors {
		player, err := build(competitor)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func topPlayers(players []games.GolfPlayer) []games.GolfPlayer {
	sort.SliceStable(players, func(i, j int) bool { return players[i].Position < players[j].Position })
	if len(players) > games.MaxGolfPlayers {
		players = players[:games.MaxGolfPlayers]
	}
	return players
}

func latestScore(competitor rawjson.Object) (string, error) {
	stats, err := competitor.Array("statistics")
	if err != nil {
		return "", err
	}
	if len(stats) == 0 {
		return evenPar, nil
	}
	latest, err := rawjson.AsObject(stats[0], "statistics[0]")
	if err != nil {
		return "", err
	}
	return latest.String("displayValue")
}

func leaderboardPosition(competitor rawjson.Object) (uint64, error) {
	status, err := competitor.Object("status")
	if err != nil {
		return 0, err
	}
	position, err := status.Object("position")
	if err != nil {
		return 0, err
	}
	return position.UintOrString("id")
}

// strokePlayer builds an individual leaderboard entry; the display name is the
// surname with generational suffixes dropped.
func strokePlayer(competitor rawjson.Object) (games.GolfPlayer, error) {
	score, err := latestScore(competitor)
	if err != nil {
		return games.GolfPlayer{}, err
	}
	athlete, err := competitor.Object("athlete")
	if err != nil {
		return games.GolfPlayer{}, err
	}
	fullName, err := athlete.String("displayName")
	if err != nil {
		return games.GolfPlayer{}, err
	}
	position, err := leaderboardPosition(competitor)
	if err != nil {
		return games.GolfPlayer{}, err
	}
	fullName = strings.ToUpper(fullName)
	return games.GolfPlayer{
		Name:        fullName,
		DisplayName: Surname(fullName),
		Score:       score,
		Position:    position,
	}, nil
}

// teamstrokePlayer builds a pair entry from the structured roster.
func teamstrokePlayer(competitor rawjson.Object) (games.GolfPlayer, error) {
	score, err := latestScore(competitor)
	if err != nil {
		return games.GolfPlayer{}, err
	}
	roster, err := competitor.Objects("roster")
	if err != nil {
		return games.GolfPlayer{}, err
	}
	names := make([]string, 0, len(roster))
	for _, member := range roster {
		athlete, err := member.Object("athlete")
		if err != nil {
			return games.GolfPlayer{}, err
		}
		last, err := athlete.String("lastName")
		if err != nil {
			return games.GolfPlayer{}, err
		}
		names = append(names, truncate(last, pairNameChars))
	}
	position, err := leaderboardPosition(competitor)
	if err != nil {
		return games.GolfPlayer{}, err
	}
	display := strings.ToUpper(strings.Join(names, "/"))
	return games.GolfPlayer{Name: display, DisplayName: display, Score: score, Position: position}, nil
}

// playersFromRawData parses leaderboard rows from a text blob. Rows keep their
// order; position is the row's line index in the blob, header lines included.
func playersFromRawData(blob string) []games.GolfPlayer {
	var players []games.GolfPlayer
	for i, line := range strings.Split(blob, "\n") {
		match := rawDataLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		first := truncate(strings.TrimSpace(match[1]), pairNameChars)
		second := truncate(strings.TrimSpace(match[2]), pairNameChars)
		display := strings.ToUpper(first + "/" + second)
		players = append(players, games.GolfPlayer{
			Name:        display,
			DisplayName: display,
			Score:       match[3],
			Position:    uint64(i),
		})
		if len(players) == games.MaxGolfPlayers {
			break
		}
	}
	return players
}

// Surname returns the last word of name that is not a generational suffix.
func Surname(name string) string {
	words := strings.Split(name, " ")
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] != "" && !nameSuffixes[words[i]] {
			return words[i]
		}
	}
	return name
}

// EventName shortens a tournament's short name: uppercase, known aliases
// collapsed, generic words removed.
func EventName(shortName string) string {
	name := strings.ToUpper(shortName)
	if alias, ok := eventAliases[name]; ok {
		name = alias
	}
	words := strings.Split(name, " ")
	kept := words[:0]
	for _, word := range words {
		if !eventStopWords[word] {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
