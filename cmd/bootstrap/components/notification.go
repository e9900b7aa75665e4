package components

import (
	"log/slog"

	"airease-backend/internal/infra/notify"
	"airease-backend/internal/pkg/config"
	"airease-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewMailer(cfg config.Config, logger *slog.Logger) *notify.Mailer {
	return notify.NewMailerFromConfig(cfg.Mail, logger)
}
