// Command export-teams writes every static team table to <dir>/<sport>.json.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	appteams "github.com/preston-bernstein/live-sports-service/internal/app/teams"
	"github.com/preston-bernstein/live-sports-service/internal/config"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/teams"
)

func main() {
	dir := flag.String("dir", "teams", "output directory")
	flag.Parse()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "export-teams",
		Output:  os.Stderr,
	})

	tables, err := teams.Load()
	if err != nil {
		logger.Error("load team tables", "error", err)
		os.Exit(1)
	}

	written, err := export(appteams.NewService(tables), *dir)
	if err != nil {
		logger.Error("export failed", "dir", *dir, "error", err)
		os.Exit(1)
	}
	for _, path := range written {
		fmt.Println(path)
	}
	logger.Info("team tables exported", logging.FieldCount, len(written), "dir", *dir)
}

// export writes one file per sport token and returns the paths in sorted order.
func export(svc *appteams.Service, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	all := svc.All()
	written := make([]string, 0, len(all))
	for token, list := range all {
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", token, err)
		}
		path := filepath.Join(dir, token+".json")
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	sort.Strings(written)
	return written, nil
}
