package espn

import (
	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/providers"
)

const statusHalftime = "STATUS_HALFTIME"

var statusCodes = map[string]games.Status{
	"STATUS_IN_PROGRESS":   games.Active,
	"STATUS_FINAL":         games.End,
	"STATUS_PLAY_COMPLETE": games.End,
	"STATUS_SCHEDULED":     games.Pregame,
	"STATUS_RAIN_DELAY":    games.Pregame,
	"STATUS_END_PERIOD":    games.Intermission,
	statusHalftime:         games.Intermission,
	"STATUS_DELAYED":       games.Intermission,
	"STATUS_POSTPONED":     games.Invalid,
	"STATUS_CANCELED":      games.Invalid,
}

// MapStatus converts an upstream status code. Unknown codes fail with
// *providers.UnknownStatusError instead of defaulting.
func MapStatus(code string) (games.Status, error) {
	status, ok := statusCodes[code]
	if !ok {
		return games.Invalid, &providers.UnknownStatusError{Provider: ProviderName, Code: code}
	}
	return status, nil
}
