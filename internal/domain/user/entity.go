package user

import (
	"time"

	"github.com/google/uuid"
)

// User is created only after the email address has been verified.
type User struct {
	id           uuid.UUID
	email        Email
	username     Username
	passwordHash string
	label        Label
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, username Username, passwordHash string, label Label, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		label:        label,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

// Reconstruct rebuilds a persisted user without re-running validation.
func Reconstruct(id uuid.UUID, email, username, passwordHash, label string, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        Email{value: email},
		username:     Username{value: username},
		passwordHash: passwordHash,
		label:        Label(label),
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Label() Label         { return u.label }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
