//go:build unit || e2e

package builder

import (
	"time"

	"airease-backend/internal/domain/user"
	"airease-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	Label        string
	IsActive     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Username:     "traveller",
		PasswordHash: "hashed_password",
		Label:        "business",
		IsActive:     true,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() *user.User {
	return user.Reconstruct(u.ID, u.Email, u.Username, u.PasswordHash, u.Label, u.IsActive, u.CreatedAt, u.CreatedAt)
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Label:     u.Label,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
