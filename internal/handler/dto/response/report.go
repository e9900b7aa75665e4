package response

import (
	"time"

	"airease-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReportResponse struct {
	ID            uuid.UUID      `json:"id"`
	UserEmail     string         `json:"userEmail"`
	Category      string         `json:"category"`
	CategoryLabel string         `json:"categoryLabel"`
	Content       string         `json:"content"`
	FlightID      *string        `json:"flightId"`
	FlightInfo    map[string]any `json:"flightInfo"`
	Status        string         `json:"status"`
	StatusLabel   string         `json:"statusLabel"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func FromReportView(v *queries.ReportView) (*ReportResponse, error) {
	var res ReportResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromReportList(items []queries.ReportView) ([]ReportResponse, error) {
	res := make([]ReportResponse, 0, len(items))
	if err := copier.CopyWithOption(&res, &items, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return res, nil
}

type CategoriesResponse struct {
	Categories []queries.CategoryView `json:"categories"`
}
