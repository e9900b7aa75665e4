package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data returned to the account owner
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Label     string    `json:"label"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReportView represents read-optimized feedback report data
type ReportView struct {
	ID            uuid.UUID
	UserEmail     string
	Category      string
	CategoryLabel string
	Content       string
	FlightID      *string
	FlightInfo    map[string]any
	Status        string
	StatusLabel   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ReportFilter struct {
	UserEmail *string
	Category  *string
	Status    *string
	Limit     int
	Offset    int
}

type CategoryView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
