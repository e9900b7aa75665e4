package bootstrap

import (
	"airease-backend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.ProviderModule,
	components.NotificationModule,
	components.UseCaseModule,
	components.HandlerModule,
)
