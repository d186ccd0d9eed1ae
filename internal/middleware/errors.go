package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-api/internal/httperr"
)

// ErrorHandler renders the last error a handler attached with
// httperr.Abort. expose adds the underlying error text to 5xx bodies.
func ErrorHandler(logger *slog.Logger, expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if httperr.KindOf(err).Status() >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request.Context(), "request failed",
				"request_id", RequestIDFrom(c.Request.Context()),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error_code", httperr.CodeOf(err),
				"error", err,
			)
		}

		httperr.Render(c, err, expose)
	}
}

// Recovery turns a panic into the 500 envelope.
func Recovery(logger *slog.Logger, expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rvr := recover(); rvr != nil {
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					"request_id", RequestIDFrom(c.Request.Context()),
					"panic", rvr,
					"stack", string(debug.Stack()),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)

				if c.Writer.Written() {
					c.Abort()
					return
				}

				httperr.Render(c, httperr.ErrInternal(
					"internal_error",
					"internal server error",
					fmt.Errorf("panic: %v", rvr),
				), expose)
				c.Abort()
			}
		}()

		c.Next()
	}
}
