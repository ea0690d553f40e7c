package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"thaigeo/internal/config"
)

// OpenRedis returns nil when no Redis address is configured.
func OpenRedis(cfg config.Redis, logger *zap.Logger) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	logger.Debug("redis_env", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

// PingRedis checks connectivity with a short deadline.
func PingRedis(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}
