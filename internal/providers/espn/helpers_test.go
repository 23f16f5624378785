package espn

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/rawjson"
	"github.com/preston-bernstein/live-sports-service/internal/teams"
)

var testNow = time.Date(2023, 10, 10, 20, 0, 0, 0, time.UTC)

type eventSpec struct {
	id          string
	date        string
	code        string
	period      int
	shortDetail string
	clock       string
	home        string
	away        string
	homeScore   string
	awayScore   string
	situation   string
	extraTeam   string
}

func teamJSON(id string) string {
	return fmt.Sprintf(`{"id":"%s","location":"Somewhere","name":"Team %s","abbreviation":"T%s","color":"336699"}`, id, id, id)
}

func (e eventSpec) json() string {
	if e.date == "" {
		e.date = "2023-10-10T18:00Z"
	}
	if e.shortDetail == "" {
		e.shortDetail = "Final"
	}
	if e.homeScore == "" {
		e.homeScore = "0"
	}
	if e.awayScore == "" {
		e.awayScore = "0"
	}
	competitors := []string{
		fmt.Sprintf(`{"homeAway":"home","score":"%s","team":%s}`, e.homeScore, teamJSON(e.home)),
		fmt.Sprintf(`{"homeAway":"away","score":"%s","team":%s}`, e.awayScore, teamJSON(e.away)),
	}
	if e.extraTeam != "" {
		competitors = append(competitors, fmt.Sprintf(`{"score":"0","team":%s}`, teamJSON(e.extraTeam)))
	}
	situation := ""
	if e.situation != "" {
		situation = `,"situation":` + e.situation
	}
	return fmt.Sprintf(`{
		"id": "%s",
		"competitions": [{
			"id": "%s",
			"date": "%s",
			"status": {"period": %d, "displayClock": "%s", "type": {"name": "%s", "shortDetail": "%s"}},
			"competitors": [%s]%s
		}]
	}`, e.id, e.id, e.date, e.period, e.clock, e.code, e.shortDetail, strings.Join(competitors, ","), situation)
}

func scoreboardDoc(t *testing.T, events ...eventSpec) rawjson.Object {
	t.Helper()
	parts := make([]string, 0, len(events))
	for _, e := range events {
		parts = append(parts, e.json())
	}
	doc, err := rawjson.Decode([]byte(`{"events":[` + strings.Join(parts, ",") + `]}`))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return doc
}

func newResolver(t *testing.T) *teams.Resolver {
	t.Helper()
	tables, err := teams.Load()
	if err != nil {
		t.Fatalf("load teams: %v", err)
	}
	return teams.NewResolver(tables, nil)
}

func decode(t *testing.T, body string) rawjson.Object {
	t.Helper()
	doc, err := rawjson.Decode([]byte(body))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return doc
}
