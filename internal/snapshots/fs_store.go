package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

// Store loads mirrored snapshots.
type Store interface {
	LoadSnapshot(sport sports.Sport) (Snapshot, error)
}

// FSStore loads snapshots written by FSWriter.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSnapshot reads the latest snapshot for sport. A missing file is reported
// as an error wrapping os.ErrNotExist.
func (s *FSStore) LoadSnapshot(sport sports.Sport) (Snapshot, error) {
	if s == nil || s.basePath == "" {
		return Snapshot{}, errors.New("snapshot store not configured")
	}
	f, err := os.Open(SnapshotPath(s.basePath, sport))
	if err != nil {
		return Snapshot{}, err
	}
	defer f.Close()

	var snap Snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
