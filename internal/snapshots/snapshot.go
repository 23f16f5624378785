// Package snapshots mirrors the newest cached games per sport to durable
// locations. Each write overwrites the previous snapshot; no history is kept.
package snapshots

import (
	"context"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

// Snapshot is the newest successful fetch for one sport.
type Snapshot struct {
	Sport     sports.Sport `json:"sport"`
	FetchedAt time.Time    `json:"fetched_at"`
	Games     []games.Game `json:"games"`
}

// Writer persists a snapshot, replacing any earlier one for the same sport.
type Writer interface {
	WriteSnapshot(ctx context.Context, snap Snapshot) error
}
