package snapshots

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FSWriter writes the latest snapshot per sport as JSON under basePath and keeps
// a manifest of refresh times.
type FSWriter struct {
	basePath string
	mu       sync.Mutex
}

// NewFSWriter constructs a writer rooted at basePath.
func NewFSWriter(basePath string) *FSWriter {
	return &FSWriter{basePath: basePath}
}

// BasePath exposes the writer root path.
func (w *FSWriter) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSnapshot replaces the sport's snapshot file and updates the manifest.
// Unchanged payloads are not rewritten.
func (w *FSWriter) WriteSnapshot(ctx context.Context, snap Snapshot) error {
	_ = ctx
	if w == nil || w.basePath == "" {
		return fmt.Errorf("snapshot writer not configured")
	}
	if !snap.Sport.Valid() {
		return fmt.Errorf("snapshot sport required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	target := SnapshotPath(w.basePath, snap.Sport)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err != nil || !bytes.Equal(existing, data) {
		if err := writeAtomic(target, data); err != nil {
			return err
		}
	}
	return w.updateManifest(snap)
}

func (w *FSWriter) updateManifest(snap Snapshot) error {
	m, _ := ReadManifest(w.basePath)
	m.Sports[snap.Sport.String()] = SportMeta{
		FetchedAt: snap.FetchedAt.UTC(),
		Games:     len(snap.Games),
	}
	return writeManifest(w.basePath, m)
}
