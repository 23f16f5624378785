package snapshots

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

var fetchedAt = time.Date(2023, 10, 10, 20, 0, 0, 0, time.UTC)

func simpleSnapshot(sport sports.Sport, ids ...uint64) Snapshot {
	list := make([]games.Game, 0, len(ids))
	for _, id := range ids {
		list = append(list, games.Game{GameID: id, Sport: sport, Status: games.Active})
	}
	return Snapshot{Sport: sport, FetchedAt: fetchedAt, Games: list}
}

func writeSnapshot(t *testing.T, w Writer, snap Snapshot) {
	t.Helper()
	if err := w.WriteSnapshot(context.Background(), snap); err != nil {
		t.Fatalf("failed to write %s snapshot: %v", snap.Sport, err)
	}
}
