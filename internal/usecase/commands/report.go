package commands

import (
	"context"
	"log/slog"

	reqdto "airease-backend/internal/handler/dto/request"
	"airease-backend/internal/pkg/clock"
	"airease-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateReportResult struct {
	ReportID uuid.UUID
}

type ReportCommands interface {
	Create(ctx context.Context, req reqdto.CreateReportRequest) (*CreateReportResult, error)
}

type reportCommandsImpl struct {
	reports ReportRepository
	mailer  Mailer
	clock   clock.Clock
	logger  *slog.Logger
}

func NewReportCommands(reports ReportRepository, mailer Mailer, clk clock.Clock, logger *slog.Logger) ReportCommands {
	return &reportCommandsImpl{reports: reports, mailer: mailer, clock: clk, logger: logger}
}

// Create stores the report, then notifies the admin. A failed notice never fails the request.
func (r *reportCommandsImpl) Create(ctx context.Context, req reqdto.CreateReportRequest) (*CreateReportResult, error) {
	rep, err := req.ToDomain(r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	if err := r.reports.Create(ctx, rep); err != nil {
		return nil, err
	}

	if err := r.mailer.SendReportNotice(ctx, NewReportNotice(rep)); err != nil {
		r.logger.ErrorContext(ctx, "failed to send report notice",
			slog.String("reportID", rep.ID().String()),
			slog.String("error", err.Error()),
		)
	}

	return &CreateReportResult{ReportID: rep.ID()}, nil
}
