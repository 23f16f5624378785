package server

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/live-sports-service/internal/config"
	"github.com/preston-bernstein/live-sports-service/internal/snapshots"
)

type snapshotComponents struct {
	// store is nil when no snapshot directory is configured.
	store  snapshots.Store
	mirror *snapshots.Mirror
	redis  *redis.Client
}

func buildSnapshots(cfg config.SnapshotConfig, logger *slog.Logger) snapshotComponents {
	var (
		components snapshotComponents
		writers    []snapshots.Writer
	)
	if cfg.Dir != "" {
		writers = append(writers, snapshots.NewFSWriter(cfg.Dir))
		components.store = snapshots.NewFSStore(cfg.Dir)
	}
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			if logger != nil {
				logger.Warn("invalid redis url, redis snapshots disabled", "error", err)
			}
		} else {
			components.redis = redis.NewClient(opts)
			writers = append(writers, snapshots.NewRedisWriter(components.redis, cfg.RedisTTL))
		}
	}
	components.mirror = snapshots.NewMirror(logger, writers...)
	return components
}
