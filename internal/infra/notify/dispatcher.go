package notify

import (
	"context"
	"log/slog"
)

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}

// LogDispatcher stands in when SMTP is not configured. Nothing leaves the process.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Send(ctx context.Context, msg Message) error {
	d.logger.InfoContext(ctx, "email delivery skipped, SMTP not configured",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
