package snapshots

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
)

const defaultWriteTimeout = 2 * time.Second

// Mirror fans a refreshed snapshot out to every configured writer. Write
// failures are logged and never reach the caller.
type Mirror struct {
	writers []Writer
	logger  *slog.Logger
	timeout time.Duration
}

// NewMirror builds a Mirror over the non-nil writers.
func NewMirror(logger *slog.Logger, writers ...Writer) *Mirror {
	m := &Mirror{logger: logger, timeout: defaultWriteTimeout}
	for _, w := range writers {
		if w != nil {
			m.writers = append(m.writers, w)
		}
	}
	return m
}

// Enabled reports whether any writer is configured.
func (m *Mirror) Enabled() bool {
	return m != nil && len(m.writers) > 0
}

// Observe writes the snapshot to every writer. It is detached from the caller's
// cancellation so a finished request does not abort the write.
func (m *Mirror) Observe(ctx context.Context, sport sports.Sport, snapshot []games.Game, fetchedAt time.Time) {
	if !m.Enabled() {
		return
	}
	snap := Snapshot{Sport: sport, FetchedAt: fetchedAt.UTC(), Games: snapshot}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
	defer cancel()
	for _, w := range m.writers {
		if err := w.WriteSnapshot(writeCtx, snap); err != nil {
			logging.Warn(logging.FromContext(ctx, m.logger), "snapshot mirror failed",
				logging.FieldSport, sport.String(),
				"error", err,
			)
		}
	}
}
