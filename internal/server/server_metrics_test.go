package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/live-sports-service/internal/config"
	"github.com/preston-bernstein/live-sports-service/internal/metrics"
	"github.com/preston-bernstein/live-sports-service/internal/testutil"
)

func TestNewServerHandlesMetricsSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: config.ProviderFixture,
	}

	srv, err := newServerWithFetcher(cfg, nil, testutil.UnavailableFetcher{}, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsServer(t *testing.T) {
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: false},
		Provider: config.ProviderFixture,
	}

	srv, err := newServerWithFetcher(cfg, nil, testutil.UnavailableFetcher{}, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestNewServerUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: config.ProviderFixture,
	}

	srv, err := newServerWithFetcher(cfg, nil, testutil.UnavailableFetcher{}, rec)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected injected recorder to own its shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error %v", err)
	}
}
