package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"airease-backend/internal/handler/httperr"
	"airease-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingToken = errors.New("access token required")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ContextKeyUserID = "user_id"
	ctxUserEmailKey  = "user_email"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		userID, email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setIdentity(c, userID, email)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and never aborts.
// Flight search uses it to lift the anonymous result cap.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, userID, email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > len("Bearer ") && strings.EqualFold(authHeader[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, userID uuid.UUID, email string) {
	c.Set(ContextKeyUserID, userID)
	c.Set(ctxUserEmailKey, email)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func IsAuthenticated(c *gin.Context) bool {
	_, ok := GetUserID(c)
	return ok
}
