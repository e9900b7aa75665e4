package notify

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"airease-backend/internal/domain/verification"
	"airease-backend/internal/pkg/config"
	"airease-backend/internal/pkg/errs"
	"airease-backend/internal/usecase/commands"
)

type executor interface {
	Execute(w io.Writer, data any) error
}

// Mailer renders AirEase emails and hands them to a Dispatcher.
type Mailer struct {
	dispatcher Dispatcher
	adminEmail string
	// logCodes is set when mail cannot leave the process, so codes stay reachable in development.
	logCodes bool
	logger   *slog.Logger
}

func NewMailer(dispatcher Dispatcher, adminEmail string, logCodes bool, logger *slog.Logger) *Mailer {
	return &Mailer{
		dispatcher: dispatcher,
		adminEmail: adminEmail,
		logCodes:   logCodes,
		logger:     logger,
	}
}

// NewMailerFromConfig picks SMTP delivery when every SMTP setting is present.
func NewMailerFromConfig(cfg config.MailConfig, logger *slog.Logger) *Mailer {
	if cfg.SMTPConfigured() {
		return NewMailer(NewSMTPDispatcher(cfg), cfg.AdminEmail, false, logger)
	}
	logger.Warn("SMTP not configured, verification codes will be logged instead of emailed")
	return NewMailer(NewLogDispatcher(logger), cfg.AdminEmail, true, logger)
}

func (m *Mailer) SendVerificationCode(ctx context.Context, to, username, code string) error {
	if m.logCodes {
		m.logger.InfoContext(ctx, "verification code issued",
			slog.String("email", to),
			slog.String("code", code),
		)
	}

	data := struct {
		Username         string
		Code             string
		ExpiresInMinutes int
	}{username, code, int(verification.TTL.Minutes())}

	msg, err := render(to, "Your AirEase verification code", verificationTextTmpl, verificationHTMLTmpl, data)
	if err != nil {
		return err
	}
	return m.dispatcher.Send(ctx, msg)
}

func (m *Mailer) SendReportNotice(ctx context.Context, r commands.ReportNotice) error {
	if m.adminEmail == "" {
		m.logger.DebugContext(ctx, "admin notice skipped, ADMIN_EMAIL not set", slog.String("reportID", r.ID.String()))
		return nil
	}

	msg, err := render(m.adminEmail, "[AirEase] New feedback: "+r.CategoryLabel, reportTextTmpl, reportHTMLTmpl, r)
	if err != nil {
		return err
	}
	return m.dispatcher.Send(ctx, msg)
}

var _ commands.Mailer = (*Mailer)(nil)

func render(to, subject string, text, html executor, data any) (Message, error) {
	var tb, hb bytes.Buffer
	if err := text.Execute(&tb, data); err != nil {
		return Message{}, errs.Wrap(err, "render text body")
	}
	if err := html.Execute(&hb, data); err != nil {
		return Message{}, errs.Wrap(err, "render html body")
	}
	return Message{To: to, Subject: subject, Text: tb.String(), HTML: hb.String()}, nil
}
