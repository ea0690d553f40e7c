package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"thaigeo/internal/config"
	"thaigeo/internal/infra"
	mem "thaigeo/pkg/memcache"
)

const redisPrefix = "thaigeo:blob:"

var Module = fx.Provide(provideBlobStore)

// provideBlobStore prefers Redis and falls back to process memory when Redis
// is not configured or does not answer.
func provideBlobStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) mem.BlobStore {
	client := infra.OpenRedis(cfg.Redis, logger)
	if client == nil {
		logger.Debug("redis not configured, caching in memory")
		return mem.NewBlobs()
	}
	if err := infra.PingRedis(context.Background(), client); err != nil {
		logger.Warn("redis unreachable, caching in memory", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = client.Close()
		return mem.NewBlobs()
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return mem.NewRedisBlobs(client, redisPrefix)
}
