package cookie

import (
	"net/http"
	"time"

	"airease-backend/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const RefreshTokenCookieName = "airease_refresh"

// refresh tokens only travel to the auth endpoints
const refreshCookiePath = "/api/v1/auth"

func SetRefreshToken(c *gin.Context, cfg config.CookieConfig, token string, ttl time.Duration) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(RefreshTokenCookieName, token, int(ttl.Seconds()), refreshCookiePath, cfg.Domain, cfg.Secure, true)
}

func ClearRefreshToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(RefreshTokenCookieName, "", -1, refreshCookiePath, cfg.Domain, cfg.Secure, true)
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSite(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
