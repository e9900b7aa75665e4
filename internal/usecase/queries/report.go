package queries

import (
	"context"
	"strings"

	"airease-backend/internal/domain/report"
	"airease-backend/internal/infra"
	"airease-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultReportLimit = 50
	MaxReportLimit     = 200
)

var ErrReportNotFound = errs.Mark(errs.New("report not found"), errs.ErrNotFound)

type ReportQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReportView, error)
	List(ctx context.Context, f ReportFilter) ([]ReportView, error)
	Categories() []CategoryView
}

type ReportReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReportView, error)
	List(ctx context.Context, f ReportFilter) ([]ReportView, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
}

func NewReportQueries(readStore ReportReadStore) ReportQueries {
	return &reportQueriesImpl{readStore: readStore}
}

func (q *reportQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReportView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return v, nil
}

// List validates enum filters up front so a typo yields 400 instead of an empty page.
func (q *reportQueriesImpl) List(ctx context.Context, f ReportFilter) ([]ReportView, error) {
	if f.Category != nil {
		if _, err := report.NewCategory(*f.Category); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
	}
	if f.Status != nil {
		if _, err := report.NewStatus(*f.Status); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
	}
	if f.UserEmail != nil {
		e := strings.ToLower(strings.TrimSpace(*f.UserEmail))
		f.UserEmail = &e
	}
	f.Limit = ValidateLimit(f.Limit)
	if f.Offset < 0 {
		f.Offset = 0
	}
	return q.readStore.List(ctx, f)
}

func (q *reportQueriesImpl) Categories() []CategoryView {
	cats := report.Categories()
	out := make([]CategoryView, len(cats))
	for i, c := range cats {
		out[i] = CategoryView{Value: string(c), Label: c.Label()}
	}
	return out
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultReportLimit
	}
	if limit > MaxReportLimit {
		return MaxReportLimit
	}
	return limit
}
