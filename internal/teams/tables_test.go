package teams

import (
	"testing"

	"github.com/preston-bernstein/live-sports-service/internal/color"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

func TestLoadEveryTable(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	for _, sport := range sports.All() {
		table, ok := tables.ForSport(sport)
		if sport == sports.GolfPro {
			if ok {
				t.Fatal("expected golf to have no table")
			}
			continue
		}
		if !ok || len(table) == 0 {
			t.Fatalf("expected table for %s", sport)
		}
		for id, team := range table {
			if team.ID != id {
				t.Fatalf("%s: key %d holds team %d", sport, id, team.ID)
			}
			if team.Name == "" || team.Abbreviation == "" || team.DisplayName == "" {
				t.Fatalf("%s: incomplete team %+v", sport, team)
			}
			if _, err := color.ParseHex(team.PrimaryColor); err != nil {
				t.Fatalf("%s: team %d primary color: %v", sport, id, err)
			}
			if _, err := color.ParseHex(team.SecondaryColor); err != nil {
				t.Fatalf("%s: team %d secondary color: %v", sport, id, err)
			}
		}
	}
}

func TestKnownTeams(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	hockey, _ := tables.ForSport(sports.HockeyPro)
	if team := hockey[1]; team.Abbreviation != "NJD" || team.PrimaryColor != "c8102e" {
		t.Fatalf("unexpected hockey team 1: %+v", team)
	}
	baseball, _ := tables.ForSport(sports.BaseballPro)
	if team := baseball[147]; team.Name != "Yankees" {
		t.Fatalf("unexpected baseball team 147: %+v", team)
	}

	collegeFootball, _ := tables.ForSport(sports.FootballCollegiate)
	collegeBasketball, _ := tables.ForSport(sports.BasketballCollegiate)
	if len(collegeFootball) != len(collegeBasketball) {
		t.Fatal("expected collegiate sports to share a table")
	}
}

func TestSortedOrdersByID(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	table, _ := tables.ForSport(sports.BasketballPro)
	sorted := table.Sorted()
	if len(sorted) != len(table) {
		t.Fatalf("expected %d teams, got %d", len(table), len(sorted))
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].ID >= sorted[i].ID {
			t.Fatalf("teams out of order at %d: %d then %d", i, sorted[i-1].ID, sorted[i].ID)
		}
	}
}
