package api

import (
	"errors"
	"net/http"

	"airease-backend/internal/domain/verification"
	reqdto "airease-backend/internal/handler/dto/request"
	resdto "airease-backend/internal/handler/dto/response"
	"airease-backend/internal/handler/httperr"
	"airease-backend/internal/handler/middleware"
	"airease-backend/internal/pkg/config"
	"airease-backend/internal/pkg/cookie"
	"airease-backend/internal/pkg/errs"
	"airease-backend/internal/pkg/jwt"
	"airease-backend/internal/usecase/commands"
	"airease-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const verificationSentMessage = "Verification code sent to your email"

var (
	errMissingRefreshToken = errors.New("refresh token cookie missing")
	errNotAuthenticated    = errors.New("user not authenticated")
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.UserQueries
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		jwtService: jwtService,
		cookieCfg:  cfg.Cookie,
	}
}

// @Summary Register
// @Description Start registration. A 6-digit code is emailed and expires in 10 minutes.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 200 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		abortAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RegisterResponse{
		Message:          verificationSentMessage,
		Email:            result.Email,
		ExpiresInMinutes: result.ExpiresInMinutes,
	})
}

// @Summary Verify email
// @Description Complete registration with the emailed code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyEmailRequest true "Email and code"
// @Success 201 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req reqdto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.VerifyEmail(c.Request.Context(), req)
	if err != nil {
		abortAuthError(c, err)
		return
	}

	cookie.SetRefreshToken(c, h.cookieCfg, result.TokenPair.RefreshToken, h.jwtService.RefreshTokenDuration())
	c.JSON(http.StatusCreated, h.tokenResponse(result.TokenPair.AccessToken, result.User))
}

// @Summary Resend verification code
// @Description Issue a fresh code; the previous code stops working
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResendVerificationRequest true "Email"
// @Success 200 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/auth/resend-verification [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req reqdto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.ResendVerification(c.Request.Context(), req)
	if err != nil {
		abortAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RegisterResponse{
		Message:          verificationSentMessage,
		Email:            result.Email,
		ExpiresInMinutes: result.ExpiresInMinutes,
	})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		abortAuthError(c, err)
		return
	}

	cookie.SetRefreshToken(c, h.cookieCfg, result.TokenPair.RefreshToken, h.jwtService.RefreshTokenDuration())
	c.JSON(http.StatusOK, h.tokenResponse(result.TokenPair.AccessToken, result.User))
}

// @Summary Refresh access token
// @Description Rotate the refresh cookie and return a new access token
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} httperr.Response
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingRefreshToken, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		cookie.ClearRefreshToken(c, h.cookieCfg)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		return
	}

	cookie.SetRefreshToken(c, h.cookieCfg, pair.RefreshToken, h.jwtService.RefreshTokenDuration())
	c.JSON(http.StatusOK, h.tokenResponse(pair.AccessToken, nil))
}

// @Summary User logout
// @Description Clear the refresh cookie. Access tokens expire on their own.
// @Tags auth
// @Success 204 "No Content"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearRefreshToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) tokenResponse(accessToken string, user *queries.AuthorizedUserView) resdto.TokenResponse {
	return resdto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   resdto.TokenTypeBearer,
		ExpiresIn:   int(h.jwtService.AccessTokenDuration().Seconds()),
		User:        user,
	}
}

func abortAuthError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrEmailAlreadyRegistered):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email already registered", nil)
	case errs.Is(err, verification.ErrNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No pending registration for this email. Please register first.", nil)
	case errs.Is(err, verification.ErrExpired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Verification code has expired. Please request a new one.", nil)
	case errs.Is(err, verification.ErrMismatch):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid verification code", nil)
	case errs.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, rootMessage(err), nil)
	case errs.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errs.Is(err, commands.ErrUserInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
