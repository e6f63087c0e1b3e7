package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardStatsKey = "dashboard:stats"
	dashboardTTL      = 30 * time.Second
)

var client *redis.Client

// Init initializes the Redis connection. On failure the cache degrades to a
// no-op: every getter misses and every setter is skipped.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetDashboardStats returns the cached dashboard payload, if any.
func GetDashboardStats(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, dashboardStatsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetDashboardStats caches the dashboard payload for a short TTL.
func SetDashboardStats(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, dashboardStatsKey, data, dashboardTTL)
}

// InvalidateDashboard drops the cached dashboard payload. Called after writes
// that change today's numbers (order completion, transactions, movements).
func InvalidateDashboard(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, dashboardStatsKey)
}
