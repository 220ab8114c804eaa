package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hm:pref:"

// Redis stores preferences as one hash per visitor. Every write refreshes
// the hash TTL so abandoned visitors expire.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis connects to redisURL and pings it.
func NewRedis(ctx context.Context, redisURL string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	slog.Info("prefs: redis connected", slog.String("addr", opts.Addr), slog.Duration("ttl", ttl))
	return &Redis{rdb: rdb, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, visitorID, key string) (string, error) {
	v, err := r.rdb.HGet(ctx, keyPrefix+visitorID, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (r *Redis) Set(ctx context.Context, visitorID, key, value string) error {
	k := keyPrefix + visitorID
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, k, key, value)
	if r.ttl > 0 {
		pipe.Expire(ctx, k, r.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
