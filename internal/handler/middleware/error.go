package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 12

// ErrorHandler makes sure every failed request leaves with the httperr
// envelope. Errors pushed with c.Error but never rendered are classified the
// same way handlers classify use case errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		status := c.Writer.Status()
		if len(c.Errors) == 0 && status < http.StatusBadRequest {
			// 204 and friends set only a status
			c.Writer.WriteHeaderNow()
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if last := c.Errors.Last(); last != nil {
			status, msg, detail := httperr.Classify(last.Err)
			slog.Warn("unrendered handler error",
				"request_id", GetRequestID(c), "path", c.FullPath(), "status", status, "error", last.Err)
			writeError(c, status, msg, detail)
			return
		}

		// aborted with a bare status
		writeError(c, status, http.StatusText(status), nil)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if ok {
					err = errs.Wrap(err, "panic")
				} else {
					err = errs.New(fmt.Sprintf("panic: %v", rec))
				}
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"error", err,
					slog.Any("stack", errs.ExtractStackLines(err, panicStackLines)))

				writeError(c, http.StatusInternalServerError, "Internal server error", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func writeError(c *gin.Context, status int, msg string, detail any) {
	resp := httperr.Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	c.JSON(status, resp)
}
