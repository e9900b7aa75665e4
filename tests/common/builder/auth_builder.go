//go:build unit || e2e

package builder

import (
	reqdto "airease-backend/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Username string
	Password string
	Label    string
	Code     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Username: "traveller",
		Password: "password123",
		Label:    "business",
		Code:     "123456",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Username: a.Username,
		Password: a.Password,
		Label:    a.Label,
	}
}

func (a *AuthBuilder) BuildVerifyDTO() reqdto.VerifyEmailRequest {
	return reqdto.VerifyEmailRequest{
		Email: a.Email,
		Code:  a.Code,
	}
}

func (a *AuthBuilder) BuildResendDTO() reqdto.ResendVerificationRequest {
	return reqdto.ResendVerificationRequest{Email: a.Email}
}
