package database

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the Redis connection used as the auth claims cache.
// Returns nil when REDIS_ADDR is unset; callers treat a nil client as
// "cache disabled" and fall back to the database.
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		slog.Info("redis disabled, auth cache off")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, auth cache off", "addr", addr, "error", err)
		return nil
	}

	slog.Info("connected to redis", "addr", addr)
	return client
}
