package statsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/providers"
)

func linescoreBody(period int, clock string, home, away int) string {
	return fmt.Sprintf(`{
		"currentPeriod": %d,
		"currentPeriodOrdinal": "%s",
		"currentPeriodTimeRemaining": "%s",
		"teams": {
			"home": {"goals": %d, "powerPlay": false, "numSkaters": 5},
			"away": {"goals": %d, "powerPlay": true, "numSkaters": 5}
		}
	}`, period, ordinalFor(period), clock, home, away)
}

func ordinalFor(period int) string {
	return map[int]string{1: "1st", 2: "2nd", 3: "3rd"}[period]
}

func TestFetchSportTwoPhase(t *testing.T) {
	var linescoreCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/schedule":
			_, _ = w.Write([]byte(scheduleBody(
				scheduleGame(11, "In Progress", 1, 3),
				scheduleGame(12, "Postponed", 2, 3),
				scheduleGame(13, "Final", 3, 2),
			)))
		case "/api/v1/game/11/linescore":
			atomic.AddInt32(&linescoreCalls, 1)
			_, _ = w.Write([]byte(linescoreBody(1, "20:00", 0, 1)))
		case "/api/v1/game/13/linescore":
			atomic.AddInt32(&linescoreCalls, 1)
			_, _ = w.Write([]byte(linescoreBody(3, "END", 3, 2)))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/api/v1/", HTTPClient: srv.Client(), Teams: newLookup(t)})
	out, err := client.FetchSport(context.Background(), sports.HockeyPro)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := atomic.LoadInt32(&linescoreCalls); got != 2 {
		t.Fatalf("expected 2 linescore calls, got %d", got)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 games, got %d", len(out))
	}
	if out[0].GameID != 11 || out[0].Status != games.Active || out[0].AwayScore != 1 || !out[0].Extra.Hockey.AwayPowerplay {
		t.Fatalf("unexpected first game %+v", out[0])
	}
	if out[1].GameID != 13 || out[1].Status != games.End || out[1].Ordinal != "3rd" {
		t.Fatalf("unexpected second game %+v", out[1])
	}
	for _, g := range out {
		if err := g.Validate(); err != nil {
			t.Fatalf("expected valid game, got %v", err)
		}
	}
}

func TestFetchSportFailsBatchOnLinescoreError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/schedule":
			_, _ = w.Write([]byte(scheduleBody(
				scheduleGame(21, "In Progress", 1, 3),
				scheduleGame(22, "In Progress", 2, 3),
			)))
		case strings.HasSuffix(r.URL.Path, "/22/linescore"):
			http.Error(w, "boom", http.StatusBadGateway)
		default:
			_, _ = w.Write([]byte(linescoreBody(2, "20:00", 1, 1)))
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client(), Teams: newLookup(t)})
	out, err := client.FetchSport(context.Background(), sports.HockeyPro)
	if out != nil {
		t.Fatalf("expected no partial results, got %+v", out)
	}
	var sportErr *providers.SportError
	if !errors.As(err, &sportErr) || sportErr.Sport != sports.HockeyPro {
		t.Fatalf("expected sport error, got %v", err)
	}
	var fetchErr *providers.FetchError
	if !errors.As(err, &fetchErr) || fetchErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}

func TestFetchSportRejectsOtherSports(t *testing.T) {
	client := NewClient(Config{Teams: newLookup(t)})
	_, err := client.FetchSport(context.Background(), sports.BaseballPro)
	var unsupported *providers.UnsupportedSportError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected unsupported sport error, got %v", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	if c.baseURL != defaultBaseURL || c.maxConcurrent != defaultMaxConcurrent {
		t.Fatalf("unexpected defaults %+v", c)
	}
}
