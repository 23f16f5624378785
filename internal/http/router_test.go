package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/live-sports-service/internal/app/scores"
	appteams "github.com/preston-bernstein/live-sports-service/internal/app/teams"
	"github.com/preston-bernstein/live-sports-service/internal/http/handlers"
	"github.com/preston-bernstein/live-sports-service/internal/metrics"
	"github.com/preston-bernstein/live-sports-service/internal/teams"
	"github.com/preston-bernstein/live-sports-service/internal/testutil"
)

func newTestRouter(t *testing.T, origins []string) http.Handler {
	t.Helper()
	tables, err := teams.Load()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}
	logger, _ := testutil.NewBufferLogger()
	h := handlers.NewHandler(scores.NewService(&testutil.StubCache{}), appteams.NewService(tables), nil, logger, nil)
	return NewRouter(h, RouterConfig{Logger: logger, Metrics: metrics.NewRecorder(), AllowedOrigins: origins})
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, nil)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/all", "", http.StatusOK},
		{http.MethodGet, "/sport/hockey", "", http.StatusOK},
		{http.MethodGet, "/sport/curling", "", http.StatusNotFound},
		{http.MethodPost, "/sports", `{"sport_ids":["golf"]}`, http.StatusOK},
		{http.MethodGet, "/sports", `{"sport_ids":["golf"]}`, http.StatusOK},
		{http.MethodGet, "/teams/baseball", "", http.StatusOK},
		{http.MethodGet, "/teams/golf", "", http.StatusNotFound},
		{http.MethodGet, "/snapshots/hockey", "", http.StatusNotFound},
		{http.MethodGet, "/games/today", "", http.StatusNotFound},
		{http.MethodDelete, "/all", "", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s %s: expected request id header", tc.method, tc.path)
		}
	}
}

func TestRouterAppliesCORS(t *testing.T) {
	router := newTestRouter(t, []string{"https://scores.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/all", nil)
	req.Header.Set("Origin", "https://scores.example.com")
	rr := testutil.ServeRequest(router, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://scores.example.com" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/all", nil)
	req.Header.Set("Origin", "https://elsewhere.example.com")
	rr = testutil.ServeRequest(router, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected foreign origin rejected, got %q", got)
	}
}
