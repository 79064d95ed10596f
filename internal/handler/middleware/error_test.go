//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/rendered", func(c *gin.Context) {
		httperr.Abort(c, booking.ErrRoomConflict)
	})
	r.GET("/unrendered", func(c *gin.Context) {
		_ = c.Error(booking.ErrRoomConflict)
	})
	r.GET("/bare", func(c *gin.Context) {
		c.Status(http.StatusMethodNotAllowed)
	})
	r.DELETE("/gone", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("slot index out of range")
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	t.Run("handler response is kept", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/rendered", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, booking.ErrRoomConflict.Error())
	})

	t.Run("unrendered error is classified", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/unrendered", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, booking.ErrRoomConflict.Error())
	})

	t.Run("bare error status gets the envelope", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/bare", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	t.Run("no content stays empty", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodDelete, "/gone", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/nowhere", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorRouter()

	w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}
