package components

import (
	"log/slog"

	"airease-backend/internal/handler"
	"airease-backend/internal/handler/api"
	"airease-backend/internal/handler/middleware"
	"airease-backend/internal/infra/cache"
	"airease-backend/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewFlightHandler,
		api.NewAutocompleteHandler,
		api.NewInsightsHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

// NewRateLimiter returns a nil interface without redis, which turns the middleware into a pass-through.
func NewRateLimiter(client *redis.Client, cfg config.Config, logger *slog.Logger) middleware.RateLimiter {
	if client == nil {
		return nil
	}
	return cache.NewRateLimiter(client, cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthBurst, logger)
}
