package espn

import (
	"strings"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/rawjson"
)

func footballData(competition, statusObj rawjson.Object, game games.Game) games.FootballData {
	data := games.FootballData{Possession: games.PossessionNone}
	if game.Status == games.Active {
		data.TimeRemaining = statusObj.StringOr("displayClock", "")
	}

	situation, err := competition.Object("situation")
	if err != nil {
		return data
	}
	data.BallPosition = situation.StringOr("possessionText", "")
	data.DownString = strings.ReplaceAll(situation.StringOr("shortDownDistanceText", ""), "&", "+")
	data.Possession = possession(situation, game)
	return data
}

func possession(situation rawjson.Object, game games.Game) games.Possession {
	teamID, err := situation.UintOrString("possession")
	if err != nil || game.HomeTeam == nil || game.AwayTeam == nil {
		return games.PossessionNone
	}
	switch teamID {
	case game.HomeTeam.ID:
		return games.PossessionHome
	case game.AwayTeam.ID:
		return games.PossessionAway
	default:
		return games.PossessionNone
	}
}
