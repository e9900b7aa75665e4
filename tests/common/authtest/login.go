//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"airease-backend/internal/handler/dto/request"
	resdto "airease-backend/internal/handler/dto/response"
	"airease-backend/internal/pkg/cookie"
	"airease-backend/tests/common/dbtest"
	"airease-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser returns the access token and the refresh cookie set by a successful login.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) (string, *http.Cookie) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/v1/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.TokenResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.AccessToken, "access token missing from login response")

	refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
	require.NotNil(t, refresh, "refresh cookie not set")

	return res.AccessToken, refresh
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, "traveller")
	token, _ := LoginUser(t, router, email, dbtest.DefaultPassword)
	return token
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/v1/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
