package request

import (
	"time"

	"airease-backend/internal/domain/report"
)

type CreateReportRequest struct {
	UserEmail  string         `json:"userEmail" binding:"required,email"`
	Category   string         `json:"category" binding:"required"`
	Content    string         `json:"content" binding:"required"`
	FlightID   *string        `json:"flightId"`
	FlightInfo map[string]any `json:"flightInfo"`
}

func (r *CreateReportRequest) ToDomain(now time.Time) (*report.Report, error) {
	return report.NewReport(r.UserEmail, r.Category, r.Content, r.FlightID, r.FlightInfo, now)
}

type ListReportsQuery struct {
	UserEmail string `form:"userEmail"`
	Category  string `form:"category"`
	Status    string `form:"status"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
}
