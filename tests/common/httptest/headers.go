//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"coworking-booking/internal/pkg/cookie"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertSessionCookies checks both auth cookies are set on their paths, or
// cleared when cleared is true.
func AssertSessionCookies(t *testing.T, w *httptest.ResponseRecorder, cleared bool) {
	t.Helper()
	paths := map[string]string{
		cookie.AccessTokenCookieName:  cookie.AccessTokenPath,
		cookie.RefreshTokenCookieName: cookie.RefreshTokenPath,
	}
	for name, path := range paths {
		got := ExtractCookie(w, name)
		if !assert.NotNil(t, got, "cookie %s missing", name) {
			continue
		}
		assert.True(t, got.HttpOnly, "cookie %s must be http only", name)
		assert.Equal(t, path, got.Path, "cookie %s path", name)
		if cleared {
			assert.Empty(t, got.Value, "cookie %s should be cleared", name)
		} else {
			assert.NotEmpty(t, got.Value, "cookie %s should be set", name)
		}
	}
}
