package server

import (
	"log/slog"

	"github.com/preston-bernstein/live-sports-service/internal/config"
	"github.com/preston-bernstein/live-sports-service/internal/providers/espn"
	"github.com/preston-bernstein/live-sports-service/internal/providers/fixture"
	"github.com/preston-bernstein/live-sports-service/internal/providers/statsapi"
	"github.com/preston-bernstein/live-sports-service/internal/teams"
)

// upstreams holds the unwrapped fetchers for the configured provider mode.
type upstreams struct {
	// scoreboard serves every sport family without a dedicated route.
	scoreboard namedFetcher
	// hockey is set only in live mode.
	hockey *namedFetcher
}

func selectUpstreams(cfg config.Config, tables *teams.Tables, logger *slog.Logger) upstreams {
	switch cfg.Provider {
	case config.ProviderLive, "":
		resolver := teams.NewResolver(tables, logger)
		scoreboard := espn.NewClient(espn.Config{
			BaseURL:  cfg.Upstream.ESPNBaseURL,
			Resolver: resolver,
			Logger:   logger,
		})
		hockey := statsapi.NewClient(statsapi.Config{
			BaseURL: cfg.Upstream.StatsAPIBaseURL,
			Teams:   resolver,
			Logger:  logger,
		})
		return upstreams{
			scoreboard: namedFetcher{name: espn.ProviderName, fetcher: scoreboard},
			hockey:     &namedFetcher{name: statsapi.ProviderName, fetcher: hockey},
		}
	case config.ProviderFixture:
		return upstreams{scoreboard: namedFetcher{name: fixture.ProviderName, fetcher: fixture.New(tables)}}
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return upstreams{scoreboard: namedFetcher{name: fixture.ProviderName, fetcher: fixture.New(tables)}}
	}
}
