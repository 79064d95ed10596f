//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byName(cookies []*http.Cookie) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie, len(cookies))
	for _, c := range cookies {
		out[c.Name] = c
	}
	return out
}

func TestSetTokenCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CookieConfig{Domain: "booking.example.com", Secure: true, SameSite: "Strict"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	cookie.SetTokenCookies(c, cfg, "access", "refresh", 15*time.Minute, 7*24*time.Hour)

	got := byName(w.Result().Cookies())
	require.Len(t, got, 2)

	access := got[cookie.AccessTokenCookieName]
	require.NotNil(t, access)
	assert.Equal(t, "access", access.Value)
	assert.Equal(t, cookie.AccessTokenPath, access.Path)
	assert.Equal(t, 900, access.MaxAge)

	refresh := got[cookie.RefreshTokenCookieName]
	require.NotNil(t, refresh)
	assert.Equal(t, "refresh", refresh.Value)
	assert.Equal(t, cookie.RefreshTokenPath, refresh.Path)
	assert.Equal(t, 7*24*3600, refresh.MaxAge)

	for _, ck := range got {
		assert.True(t, ck.HttpOnly, ck.Name)
		assert.True(t, ck.Secure, ck.Name)
		assert.Equal(t, http.SameSiteStrictMode, ck.SameSite, ck.Name)
		assert.Equal(t, "booking.example.com", ck.Domain, ck.Name)
	}
}

func TestClearTokenCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	cookie.ClearTokenCookies(c, config.CookieConfig{SameSite: "bogus"})

	got := byName(w.Result().Cookies())
	require.Len(t, got, 2)
	assert.Equal(t, cookie.AccessTokenPath, got[cookie.AccessTokenCookieName].Path)
	assert.Equal(t, cookie.RefreshTokenPath, got[cookie.RefreshTokenCookieName].Path)
	for _, ck := range got {
		assert.Empty(t, ck.Value, ck.Name)
		assert.Negative(t, ck.MaxAge, ck.Name)
		assert.Equal(t, http.SameSiteLaxMode, ck.SameSite, ck.Name)
	}
}

func TestGetTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	c.Request.AddCookie(&http.Cookie{Name: cookie.RefreshTokenCookieName, Value: "r"})

	assert.Equal(t, "r", cookie.GetRefreshToken(c))
	assert.Empty(t, cookie.GetAccessToken(c))
}
