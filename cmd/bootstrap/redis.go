package bootstrap

import (
	"context"
	"log/slog"

	"airease-backend/internal/infra/cache"
	"airease-backend/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns nil when REDIS_URL is unset.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("REDIS_URL not set, verification codes stay in process memory and auth rate limiting is off")
		return nil, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
