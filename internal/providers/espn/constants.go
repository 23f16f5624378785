package espn

import "github.com/preston-bernstein/live-sports-service/internal/domain/sports"

const (
	// ProviderName labels logs and metrics for the scoreboard API.
	ProviderName   = "espn"
	defaultBaseURL = "http://site.api.espn.com/apis/site/v2/sports"

	// scoreboardWindowHours drops team games further than this from now.
	scoreboardWindowHours = 12
	// golfWindowHours drops golf events further than this from now unless live or finished.
	golfWindowHours = 24

	teamstroke = "Teamstroke"
)

var scoreboardPaths = map[sports.Sport]string{
	sports.BaseballPro:          "/baseball/mlb/scoreboard",
	sports.FootballPro:          "/football/nfl/scoreboard",
	sports.FootballCollegiate:   "/football/college-football/scoreboard?groups=80",
	sports.BasketballPro:        "/basketball/nba/scoreboard",
	sports.BasketballCollegiate: "/basketball/mens-college-basketball/scoreboard?groups=50",
	sports.GolfPro:              "/golf/leaderboard?league=pga",
}

// ScoreboardPath returns the endpoint path for sport relative to the base URL.
// Hockey is not served by this provider.
func ScoreboardPath(sport sports.Sport) (string, bool) {
	path, ok := scoreboardPaths[sport]
	return path, ok
}
