package server

import (
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/live-sports-service/internal/config"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/metrics"
	"github.com/preston-bernstein/live-sports-service/internal/providers"
	"github.com/preston-bernstein/live-sports-service/internal/teams"
)

type namedFetcher struct {
	name    string
	fetcher providers.SportFetcher
}

// providerFactory assembles the sport router with shared wrappers (timeout + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	tables  *teams.Tables
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder, tables *teams.Tables) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, tables: tables}
}

func (f providerFactory) build(cfg config.Config) providers.SportFetcher {
	up := selectUpstreams(cfg, f.tables, f.logger)
	routes := map[sports.SportType]providers.SportFetcher{}
	if up.hockey != nil {
		routes[sports.Hockey] = f.wrap(cfg.Upstream, *up.hockey)
	}
	return providers.NewRouter(f.wrap(cfg.Upstream, up.scoreboard), routes)
}

// wrap retries around a per-attempt timeout, so each attempt gets the full budget.
func (f providerFactory) wrap(cfg config.UpstreamConfig, nf namedFetcher) providers.SportFetcher {
	bounded := providers.NewTimeoutFetcher(nf.fetcher, cfg.Timeout, f.logger, nf.name)
	return providers.NewRetryingFetcher(bounded, f.logger, f.metrics, nf.name, cfg.RetryAttempts, cfg.RetryBackoff)
}

// BuildFetcher returns the configured sport router for callers outside the server,
// such as one-shot CLIs.
func BuildFetcher(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.SportFetcher, error) {
	tables, err := teams.Load()
	if err != nil {
		return nil, fmt.Errorf("load team tables: %w", err)
	}
	return newProviderFactory(logger, recorder, tables).build(cfg), nil
}
