package snapshots

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
)

const (
	redisKeyPrefix  = "scores:latest:"
	defaultRedisTTL = 5 * time.Minute
)

// redisSetter is the subset of the Redis client used to publish snapshots.
type redisSetter interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisWriter publishes each sport's latest snapshot as JSON under
// scores:latest:<sport> with a TTL.
type RedisWriter struct {
	client redisSetter
	ttl    time.Duration
}

// NewRedisWriter constructs a writer over client. A non-positive ttl uses the default.
func NewRedisWriter(client redis.Cmdable, ttl time.Duration) *RedisWriter {
	return newRedisWriter(client, ttl)
}

func newRedisWriter(client redisSetter, ttl time.Duration) *RedisWriter {
	if ttl <= 0 {
		ttl = defaultRedisTTL
	}
	return &RedisWriter{client: client, ttl: ttl}
}

// RedisKey returns the key a sport's snapshot is stored under.
func RedisKey(sport sports.Sport) string {
	return redisKeyPrefix + sport.String()
}

func (w *RedisWriter) WriteSnapshot(ctx context.Context, snap Snapshot) error {
	if w == nil || w.client == nil {
		return fmt.Errorf("redis snapshot writer not configured")
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := w.client.Set(ctx, RedisKey(snap.Sport), data, w.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", RedisKey(snap.Sport), err)
	}
	return nil
}
