package commands

import (
	"context"
	"time"

	"airease-backend/internal/domain/report"
	"airease-backend/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	ExistsByEmail(ctx context.Context, email user.Email) (bool, error)
}

type ReportRepository interface {
	Create(ctx context.Context, r *report.Report) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

// Mailer delivers best-effort notifications. Callers log failures and carry on.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, username, code string) error
	SendReportNotice(ctx context.Context, notice ReportNotice) error
}

// Write-side snapshot handed to the mailer so it does not depend on read models
type ReportNotice struct {
	ID            uuid.UUID
	UserEmail     string
	CategoryLabel string
	Content       string
	FlightID      *string
	CreatedAt     time.Time
}

func NewReportNotice(r *report.Report) ReportNotice {
	return ReportNotice{
		ID:            r.ID(),
		UserEmail:     r.UserEmail().Value(),
		CategoryLabel: r.Category().Label(),
		Content:       r.Content().String(),
		FlightID:      r.FlightID(),
		CreatedAt:     r.CreatedAt(),
	}
}
