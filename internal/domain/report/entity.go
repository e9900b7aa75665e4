package report

import (
	"time"

	"airease-backend/internal/domain/user"

	"github.com/google/uuid"
)

// Report is user feedback about incorrect flight data.
type Report struct {
	id         uuid.UUID
	userEmail  user.Email
	category   Category
	content    Content
	flightID   *string
	flightInfo map[string]any
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReport(email, category, content string, flightID *string, flightInfo map[string]any, now time.Time) (*Report, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}

	c, err := NewCategory(category)
	if err != nil {
		return nil, err
	}

	body, err := NewContent(content)
	if err != nil {
		return nil, err
	}

	if flightID != nil && *flightID == "" {
		flightID = nil
	}

	return &Report{
		id:         uuid.New(),
		userEmail:  e,
		category:   c,
		content:    body,
		flightID:   flightID,
		flightInfo: flightInfo,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func (r *Report) ID() uuid.UUID              { return r.id }
func (r *Report) UserEmail() user.Email      { return r.userEmail }
func (r *Report) Category() Category         { return r.category }
func (r *Report) Content() Content           { return r.content }
func (r *Report) FlightID() *string          { return r.flightID }
func (r *Report) FlightInfo() map[string]any { return r.flightInfo }
func (r *Report) Status() Status             { return r.status }
func (r *Report) CreatedAt() time.Time       { return r.createdAt }
func (r *Report) UpdatedAt() time.Time       { return r.updatedAt }
