package server

import (
	"testing"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/config"
	"github.com/preston-bernstein/live-sports-service/internal/testutil"
)

func TestBuildSnapshotsDisabled(t *testing.T) {
	components := buildSnapshots(config.SnapshotConfig{}, nil)
	if components.store != nil || components.redis != nil || components.mirror.Enabled() {
		t.Fatalf("expected no mirrors, got %+v", components)
	}
}

func TestBuildSnapshotsDirectory(t *testing.T) {
	components := buildSnapshots(config.SnapshotConfig{Dir: t.TempDir()}, nil)
	if components.store == nil || !components.mirror.Enabled() {
		t.Fatalf("expected filesystem mirror and store")
	}
}

func TestBuildSnapshotsRedis(t *testing.T) {
	components := buildSnapshots(config.SnapshotConfig{RedisURL: "redis://localhost:6379/2", RedisTTL: time.Minute}, nil)
	if components.redis == nil || !components.mirror.Enabled() {
		t.Fatalf("expected redis mirror")
	}
	defer components.redis.Close()
	if components.store != nil {
		t.Fatalf("redis mirror is write-only")
	}
	if got := components.redis.Options().DB; got != 2 {
		t.Fatalf("expected db 2 from url, got %d", got)
	}
}

func TestBuildSnapshotsInvalidRedisURL(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	components := buildSnapshots(config.SnapshotConfig{RedisURL: "ftp://nope"}, logger)
	if components.redis != nil || components.mirror.Enabled() {
		t.Fatalf("expected invalid redis url to disable the mirror")
	}
	if buf.Len() == 0 {
		t.Fatalf("expected warning logged")
	}
}
