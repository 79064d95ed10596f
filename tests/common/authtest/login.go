//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/tests/common/dbtest"
	"coworking-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in through the API and returns the access token from the body.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	httptest.DecodeResponseBody(t, w, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

// CreateAndLogin seeds a profile and returns its ID and access token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string, opts dbtest.ProfileOpts) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestProfile(t, db, email, opts)
	return id, LoginUser(t, router, email, dbtest.DefaultPassword)
}
