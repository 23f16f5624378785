package espn

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/domain/teams"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/providers"
	"github.com/preston-bernstein/live-sports-service/internal/rawjson"
)

// TeamResolver resolves scoreboard competitors to team records.
type TeamResolver interface {
	LookupOrCreate(sport sports.Sport, id uint64, raw rawjson.Object) (teams.Team, error)
}

// Config controls how the scoreboard client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Resolver   TeamResolver
	Logger     *slog.Logger
}

// Client fetches scoreboards and leaderboards and normalizes them into games.
type Client struct {
	baseURL    string
	httpClient providers.HTTPDoer
	resolver   TeamResolver
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		httpClient: providers.ResolveHTTPClient(cfg.HTTPClient),
		resolver:   cfg.Resolver,
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// FetchSport retrieves and normalizes the current scoreboard for sport.
func (c *Client) FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	path, ok := ScoreboardPath(sport)
	if !ok {
		return nil, &providers.UnsupportedSportError{Sport: sport}
	}
	url := c.baseURL + path

	start := time.Now()
	doc, err := providers.GetJSON(ctx, c.httpClient, ProviderName, url)
	if err != nil {
		return nil, &providers.SportError{Sport: sport, Err: err}
	}
	logger := logging.FromContext(ctx, c.logger)
	logging.Debug(logger, "fetched scoreboard",
		logging.FieldProvider, ProviderName,
		logging.FieldSport, sport.String(),
		logging.FieldURL, url,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)

	var out []games.Game
	if sport.Type == sports.Golf {
		out, err = NormalizeGolf(doc, c.now().UTC(), logger)
	} else {
		out, err = NormalizeScoreboard(doc, sport, c.resolver, c.now().UTC(), logger)
	}
	if err != nil {
		return nil, &providers.SportError{Sport: sport, Err: err}
	}
	return out, nil
}
