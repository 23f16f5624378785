package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
)

// timeoutFetcher bounds each call to the wrapped fetcher so a hung upstream cannot
// stall a sport indefinitely.
type timeoutFetcher struct {
	next    SportFetcher
	timeout time.Duration
	logger  *slog.Logger
	name    string
}

// NewTimeoutFetcher returns a SportFetcher whose calls are cancelled after timeout.
// A non-positive timeout returns next unchanged.
func NewTimeoutFetcher(next SportFetcher, timeout time.Duration, logger *slog.Logger, name string) SportFetcher {
	if timeout <= 0 {
		return next
	}
	return &timeoutFetcher{next: next, timeout: timeout, logger: logger, name: name}
}

func (p *timeoutFetcher) FetchSport(ctx context.Context, sport sports.Sport) ([]games.Game, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	result, err := p.next.FetchSport(ctx, sport)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider fetch timed out",
			logging.FieldSport, sport.String(),
			"timeout_ms", p.timeout.Milliseconds(),
		)
	}
	return result, err
}
