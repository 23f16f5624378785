package snapshots

import (
	"fmt"
	"path/filepath"

	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

const scoresDir = "scores"

// SnapshotPath builds the path to the latest snapshot for sport.
func SnapshotPath(basePath string, sport sports.Sport) string {
	return filepath.Join(basePath, scoresDir, fmt.Sprintf("%s.json", sport))
}
