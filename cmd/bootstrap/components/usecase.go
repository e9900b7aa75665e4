package components

import (
	"airease-backend/internal/pkg/clock"
	"airease-backend/internal/pkg/password"
	"airease-backend/internal/usecase"
	"airease-backend/internal/usecase/commands"
	"airease-backend/internal/usecase/queries"
	"airease-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSharedModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		password.NewDefaultHasher,
		fx.As(new(commands.PasswordHasher)),
	),
)

var usecaseSharedModule = fx.Module("usecase/shared",
	fx.Provide(
		shared.NewVerificationManager,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReportCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
