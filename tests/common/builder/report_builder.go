//go:build unit || e2e

package builder

import (
	"time"

	reqdto "airease-backend/internal/handler/dto/request"
	"airease-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReportBuilder struct {
	ID         uuid.UUID
	UserEmail  string
	Category   string
	Content    string
	FlightID   *string
	FlightInfo map[string]any
	Status     string
	CreatedAt  time.Time
}

func NewReportBuilder() *ReportBuilder {
	flightID := "FL-0001"
	return &ReportBuilder{
		ID:        uuid.New(),
		UserEmail: "reporter@example.com",
		Category:  "price_error",
		Content:   "Displayed price was different at checkout",
		FlightID:  &flightID,
		FlightInfo: map[string]any{
			"flightNumber": "NH 10",
			"airline":      "ANA",
		},
		Status:    "pending",
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReportBuilder) With(mutate func(*ReportBuilder)) *ReportBuilder {
	mutate(r)
	return r
}

func (r *ReportBuilder) BuildDTO() reqdto.CreateReportRequest {
	return reqdto.CreateReportRequest{
		UserEmail:  r.UserEmail,
		Category:   r.Category,
		Content:    r.Content,
		FlightID:   r.FlightID,
		FlightInfo: r.FlightInfo,
	}
}

func (r *ReportBuilder) BuildReadModel() *queries.ReportView {
	return &queries.ReportView{
		ID:            r.ID,
		UserEmail:     r.UserEmail,
		Category:      r.Category,
		CategoryLabel: "Price Error",
		Content:       r.Content,
		FlightID:      r.FlightID,
		FlightInfo:    r.FlightInfo,
		Status:        r.Status,
		StatusLabel:   "Pending",
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.CreatedAt,
	}
}
