package testutil

import (
	"context"
	"testing"

	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/snapshots"
)

// NewTempWriter returns a filesystem snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T) *snapshots.FSWriter {
	t.Helper()
	return snapshots.NewFSWriter(t.TempDir())
}

// WriteSnapshot writes a snapshot of list for sport at ReferenceTime.
func WriteSnapshot(t *testing.T, w *snapshots.FSWriter, sport sports.Sport, list ...games.Game) {
	t.Helper()
	if err := writeSnapshotPayload(w, sport, list); err != nil {
		t.Fatalf("failed to write %s snapshot: %v", sport, err)
	}
}

func writeSnapshotPayload(w *snapshots.FSWriter, sport sports.Sport, list []games.Game) error {
	if list == nil {
		list = []games.Game{}
	}
	return w.WriteSnapshot(context.Background(), snapshots.Snapshot{
		Sport:     sport,
		FetchedAt: ReferenceTime,
		Games:     list,
	})
}

// SnapshotPath returns the expected file path for a sport's snapshot.
func SnapshotPath(w *snapshots.FSWriter, sport sports.Sport) string {
	return snapshots.SnapshotPath(w.BasePath(), sport)
}
