package notify

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"airease-backend/internal/pkg/config"
	"airease-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDeliveryFailed = errs.New("email delivery failed")

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPDispatcher struct {
	addr string
	from string
	auth smtp.Auth
	send sendFunc
	now  func() time.Time
}

func NewSMTPDispatcher(cfg config.MailConfig) *SMTPDispatcher {
	return &SMTPDispatcher{
		addr: net.JoinHostPort(cfg.SMTPHost, cfg.SMTPPort),
		from: cfg.Sender(),
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost),
		send: smtp.SendMail,
		now:  time.Now,
	}
}

// Send blocks until the SMTP exchange finishes or ctx is done. A cancelled send
// may still complete in the background.
func (d *SMTPDispatcher) Send(ctx context.Context, msg Message) error {
	body := d.build(msg)

	done := make(chan error, 1)
	go func() {
		done <- d.send(d.addr, d.auth, d.from, []string{msg.To}, body)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errs.Mark(errs.Wrapf(err, "send mail to %s", msg.To), ErrDeliveryFailed)
		}
		return nil
	case <-ctx.Done():
		return errs.Mark(errs.Wrap(ctx.Err(), "send mail"), ErrDeliveryFailed)
	}
}

func (d *SMTPDispatcher) build(msg Message) []byte {
	boundary := "airease-" + uuid.NewString()

	var b strings.Builder
	writeHeader := func(k, v string) {
		b.WriteString(k + ": " + headerSafe(v) + "\r\n")
	}
	writeHeader("From", d.from)
	writeHeader("To", msg.To)
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	writeHeader("Date", d.now().Format(time.RFC1123Z))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", boundary))
	b.WriteString("\r\n")

	part := func(contentType, content string) {
		b.WriteString("--" + boundary + "\r\n")
		b.WriteString("Content-Type: " + contentType + "; charset=\"utf-8\"\r\n")
		b.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
		b.WriteString(content)
		b.WriteString("\r\n")
	}
	part("text/plain", msg.Text)
	if msg.HTML != "" {
		part("text/html", msg.HTML)
	}
	b.WriteString("--" + boundary + "--\r\n")

	return []byte(b.String())
}

// headerSafe strips CR and LF so user input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(s))
}
