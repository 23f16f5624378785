package espn

import (
	"strings"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/rawjson"
)

// baseballData reads the optional at-bat situation. Counts and runners default to
// zero/empty when the situation is absent.
func baseballData(competition, statusObj rawjson.Object) (games.BaseballData, error) {
	var data games.BaseballData
	if situation, err := competition.Object("situation"); err == nil {
		data.Balls = countOrZero(situation, "balls")
		data.Strikes = countOrZero(situation, "strikes")
		data.Outs = countOrZero(situation, "outs")
		data.OnFirst = situation.BoolOr("onFirst", false)
		data.OnSecond = situation.BoolOr("onSecond", false)
		data.OnThird = situation.BoolOr("onThird", false)
	}

	statusType, err := statusObj.Object("type")
	if err != nil {
		return games.BaseballData{}, err
	}
	detail, err := statusType.String("shortDetail")
	if err != nil {
		return games.BaseballData{}, err
	}
	data.IsInningTop = strings.Contains(detail, "Top")
	return data, nil
}

func countOrZero(obj rawjson.Object, name string) uint64 {
	n, err := obj.UintOrString(name)
	if err != nil {
		return 0
	}
	return n
}
