package auth

import (
	"errors"

	"airease-backend/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials does not apply the password policy; a wrong password is a login failure, not a validation error.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}

// Registration is a validated sign-up request awaiting email verification.
type Registration struct {
	email    user.Email
	username user.Username
	password user.Password
	label    user.Label
}

func NewRegistration(emailStr, usernameStr, passwordStr, labelStr string) (Registration, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Registration{}, err
	}

	username, err := user.NewUsername(usernameStr)
	if err != nil {
		return Registration{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Registration{}, err
	}

	label, err := user.NewLabel(labelStr)
	if err != nil {
		return Registration{}, err
	}

	return Registration{
		email:    email,
		username: username,
		password: password,
		label:    label,
	}, nil
}

func (r Registration) Email() user.Email       { return r.email }
func (r Registration) Username() user.Username { return r.username }
func (r Registration) Password() user.Password { return r.password }
func (r Registration) Label() user.Label       { return r.label }
