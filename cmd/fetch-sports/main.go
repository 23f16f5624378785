// Command fetch-sports fetches the current games for a set of sports once and
// prints the per-sport outcome as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/preston-bernstein/live-sports-service/internal/aggregator"
	"github.com/preston-bernstein/live-sports-service/internal/config"
	"github.com/preston-bernstein/live-sports-service/internal/domain/games"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/providers"
	"github.com/preston-bernstein/live-sports-service/internal/server"
)

// sportOutcome carries either the games or the error for one sport.
type sportOutcome struct {
	Games *[]games.Game `json:"games,omitempty"`
	Error string        `json:"error,omitempty"`
}

func main() {
	sportsFlag := flag.String("sports", "", "comma-separated sport tokens (default: all)")
	provider := flag.String("provider", "", "override PROVIDER (live or fixture)")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}
	cfg := config.Load()
	if *provider != "" {
		cfg.Provider = strings.ToLower(*provider)
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "fetch-sports",
		Output:  os.Stderr,
	})

	requested, err := parseSports(*sportsFlag)
	if err != nil {
		logger.Error("invalid -sports", "error", err)
		os.Exit(2)
	}

	fetcher, err := server.BuildFetcher(cfg, logger, nil)
	if err != nil {
		logger.Error("build fetcher", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed, err := run(ctx, fetcher, requested, logger, os.Stdout)
	if err != nil {
		logger.Error("write output", "error", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func parseSports(raw string) ([]sports.Sport, error) {
	if strings.TrimSpace(raw) == "" {
		return sports.All(), nil
	}
	return sports.ParseList(strings.Split(raw, ","))
}

// run fetches every requested sport and writes one JSON object keyed by sport
// token. It reports how many sports failed.
func run(ctx context.Context, fetcher providers.SportFetcher, requested []sports.Sport, logger *slog.Logger, out io.Writer) (int, error) {
	results := aggregator.New(fetcher, logger).FetchMany(ctx, requested)

	failed := 0
	payload := make(map[string]sportOutcome, len(results))
	for sport, res := range results {
		if res.Err != nil {
			failed++
			payload[sport.String()] = sportOutcome{Error: res.Err.Error()}
			continue
		}
		list := res.Games
		if list == nil {
			list = []games.Game{}
		}
		payload[sport.String()] = sportOutcome{Games: &list}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return failed, enc.Encode(payload)
}
