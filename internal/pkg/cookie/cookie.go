package cookie

import (
	"net/http"
	"time"

	"coworking-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "booking_access"
	RefreshTokenCookieName = "booking_refresh"

	// The access cookie rides on every API call; the refresh cookie only
	// reaches the auth routes that rotate or revoke it.
	AccessTokenPath  = "/api"
	RefreshTokenPath = "/api/auth"
)

// SetTokenCookies stores a fresh session pair.
func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	write(c, cfg, AccessTokenCookieName, AccessTokenPath, accessToken, accessExpiry)
	write(c, cfg, RefreshTokenCookieName, RefreshTokenPath, refreshToken, refreshExpiry)
}

// ClearTokenCookies expires both cookies on the same paths they were set on,
// otherwise the browser keeps the old ones.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, AccessTokenCookieName, AccessTokenPath, "", 0)
	write(c, cfg, RefreshTokenCookieName, RefreshTokenPath, "", 0)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, name, path, value string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if value == "" {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.SameSite),
	})
}

func sameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
