package games

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/domain/teams"
)

func TestGameJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	gameType := reflect.TypeOf(Game{})
	fields := []fieldCheck{
		{"GameID", "game_id"},
		{"Sport", "sport"},
		{"HomeTeam", "home_team"},
		{"AwayTeam", "away_team"},
		{"HomeScore", "home_score"},
		{"AwayScore", "away_score"},
		{"Status", "status"},
		{"Period", "period"},
		{"Ordinal", "ordinal"},
		{"StartTime", "start_time"},
		{"Extra", "extra"},
	}

	for _, fc := range fields {
		field, ok := gameType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if jsonTag := field.Tag.Get("json"); jsonTag != fc.tag {
			t.Fatalf("field %s expected json tag %s, got %s", fc.name, fc.tag, jsonTag)
		}
	}
}

func TestStatusText(t *testing.T) {
	expected := map[Status]string{
		Pregame:      "PREGAME",
		Active:       "ACTIVE",
		Intermission: "INTERMISSION",
		End:          "END",
	}
	for status, want := range expected {
		got, err := status.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", status, err)
		}
		if string(got) != want {
			t.Fatalf("expected %q got %q", want, got)
		}
		var decoded Status
		if err := decoded.UnmarshalText(got); err != nil || decoded != status {
			t.Fatalf("expected %v to decode, got %v (%v)", status, decoded, err)
		}
	}
	if _, err := Invalid.MarshalText(); err == nil {
		t.Fatal("expected invalid status to be rejected")
	}
	var decoded Status
	if err := decoded.UnmarshalText([]byte("INVALID")); err == nil {
		t.Fatal("expected INVALID to be rejected on decode")
	}
}

func TestExtraDataIsExternallyTagged(t *testing.T) {
	cases := []struct {
		extra *ExtraData
		key   string
	}{
		{NewHockeyExtra(HockeyData{HomePlayers: 5, AwayPlayers: 4}), `{"hockey":{`},
		{NewBaseballExtra(BaseballData{Balls: 2}), `{"baseball":{`},
		{NewBasketballExtra(), `{"basketball":{}}`},
		{NewFootballExtra(FootballData{Possession: PossessionHome}), `{"football":{`},
		{NewGolfExtra(GolfData{EventName: "MASTERS"}), `{"golf":{`},
	}
	for _, tc := range cases {
		payload, err := json.Marshal(tc.extra)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.HasPrefix(string(payload), tc.key) {
			t.Fatalf("expected payload to start with %s, got %s", tc.key, payload)
		}
		if _, ok := tc.extra.Family(); !ok {
			t.Fatalf("expected single variant for %s", payload)
		}
	}
}

func TestExtraDataFamilyRejectsMixedVariants(t *testing.T) {
	mixed := ExtraData{Hockey: &HockeyData{}, Golf: &GolfData{}}
	if _, ok := mixed.Family(); ok {
		t.Fatal("expected mixed variants to be rejected")
	}
	if _, ok := (ExtraData{}).Family(); ok {
		t.Fatal("expected empty extra to be rejected")
	}
}

func TestGameEncodesContract(t *testing.T) {
	home := teams.Team{ID: 1, Name: "Devils"}
	away := teams.Team{ID: 3, Name: "Rangers"}
	g := Game{
		GameID:    2023020001,
		Sport:     sports.HockeyPro,
		HomeTeam:  &home,
		AwayTeam:  &away,
		HomeScore: 3,
		AwayScore: 2,
		Status:    Intermission,
		Period:    2,
		Ordinal:   "2nd INT",
		StartTime: time.Date(2023, 10, 10, 23, 0, 0, 0, time.UTC),
		Extra:     NewHockeyExtra(HockeyData{HomePlayers: 5, AwayPlayers: 5}),
	}
	payload, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, fragment := range []string{
		`"sport":"hockey"`,
		`"status":"INTERMISSION"`,
		`"start_time":"2023-10-10T23:00:00Z"`,
		`"extra":{"hockey":{"away_powerplay":false`,
	} {
		if !strings.Contains(string(payload), fragment) {
			t.Fatalf("expected %s in %s", fragment, payload)
		}
	}

	var decoded Game
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(decoded, g) {
		t.Fatalf("expected decoded game to match, got %+v", decoded)
	}
}

func TestValidate(t *testing.T) {
	home := teams.Team{ID: 1}
	valid := Game{Sport: sports.BaseballPro, HomeTeam: &home, AwayTeam: &home, Extra: NewBaseballExtra(BaseballData{})}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid game, got %v", err)
	}

	cases := map[string]Game{
		"mixed teams":    {Sport: sports.BaseballPro, HomeTeam: &home},
		"golf teams":     {Sport: sports.GolfPro, HomeTeam: &home, AwayTeam: &home},
		"wrong extra":    {Sport: sports.BaseballPro, HomeTeam: &home, AwayTeam: &home, Extra: NewHockeyExtra(HockeyData{})},
		"invalid status": {Sport: sports.BaseballPro, Status: Invalid},
		"unknown sport":  {Sport: sports.Sport{Type: sports.Golf, Level: sports.Collegiate}},
	}
	for name, g := range cases {
		if err := g.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
