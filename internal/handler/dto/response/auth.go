package response

import "airease-backend/internal/usecase/queries"

const TokenTypeBearer = "bearer"

type RegisterResponse struct {
	Message          string `json:"message"`
	Email            string `json:"email"`
	ExpiresInMinutes int    `json:"expiresInMinutes"`
}

type TokenResponse struct {
	AccessToken string                      `json:"accessToken"`
	TokenType   string                      `json:"tokenType"`
	ExpiresIn   int                         `json:"expiresIn"`
	User        *queries.AuthorizedUserView `json:"user,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
