package statsapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/providers"
)

// Config controls how the hockey client reaches the league API.
type Config struct {
	BaseURL       string
	HTTPClient    *http.Client
	Teams         TeamLookup
	Logger        *slog.Logger
	MaxConcurrent int
}

// Client fetches the day's schedule and then one linescore per game.
type Client struct {
	baseURL       string
	httpClient    providers.HTTPDoer
	teams         TeamLookup
	logger        *slog.Logger
	maxConcurrent int
}

// NewClient constructs a hockey client with the provided configuration.
func NewClient(cfg Config) *Client {
	limit := cfg.MaxConcurrent
	if limit <= 0 {
		limit = defaultMaxConcurrent
	}
	return &Client{
		baseURL:       providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		httpClient:    providers.ResolveHTTPClient(cfg.HTTPClient),
		teams:         cfg.Teams,
		logger:        cfg.Logger,
		maxConcurrent: limit,
	}
}

// FetchSport returns today's hockey games. A failed linescore fetch fails the
// whole batch.
func (c *Client) FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	if sport.Type != sports.Hockey {
		return nil, &providers.UnsupportedSportError{Sport: sport}
	}
	if c.teams == nil {
		return nil, &providers.SportError{Sport: sport, Err: providers.ErrProviderUnavailable}
	}

	logger := logging.FromContext(ctx, c.logger)
	start := time.Now()

	doc, err := providers.GetJSON(ctx, c.httpClient, ProviderName, c.baseURL+schedulePath)
	if err != nil {
		return nil, &providers.SportError{Sport: sport, Err: err}
	}
	scheduled, err := ParseSchedule(doc, sport, c.teams)
	if err != nil {
		return nil, &providers.SportError{Sport: sport, Err: err}
	}

	out, err := c.fetchLinescores(ctx, scheduled)
	if err != nil {
		return nil, &providers.SportError{Sport: sport, Err: err}
	}

	logging.Debug(logger, "fetched hockey slate",
		logging.FieldProvider, ProviderName,
		logging.FieldCount, len(out),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (c *Client) fetchLinescores(ctx context.Context, scheduled []games.Game) ([]games.Game, error) {
	out := make([]games.Game, len(scheduled))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)

	for i := range scheduled {
		i := i
		g.Go(func() error {
			url := c.baseURL + fmt.Sprintf(linescorePath, scheduled[i].GameID)
			doc, err := providers.GetJSON(gctx, c.httpClient, ProviderName, url)
			if err != nil {
				return fmt.Errorf("game %d: %w", scheduled[i].GameID, err)
			}
			game, err := ApplyLinescore(scheduled[i], doc)
			if err != nil {
				return fmt.Errorf("game %d linescore: %w", scheduled[i].GameID, err)
			}
			out[i] = game
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
