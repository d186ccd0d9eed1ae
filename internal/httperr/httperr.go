package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// WriteWith adds extra top-level fields (e.g. appointmentCount) to the body.
func WriteWith(c *gin.Context, status int, code, message string, extra map[string]any) {
	if len(extra) == 0 {
		Write(c, status, code, message)
		return
	}

	body := gin.H{
		"success":    false,
		"error_code": code,
		"error":      message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// Abort hands err to the error middleware and stops the handler chain.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Render writes err as the JSON error envelope. Internal details are only
// exposed when expose is set (development mode).
func Render(c *gin.Context, err error, expose bool) {
	var be BusinessError
	if !errors.As(err, &be) {
		be = BusinessError{Kind: KindInternal, Code: "internal_error", Message: "internal server error", Err: err}
	}

	status := be.Kind.Status()
	if status < http.StatusInternalServerError {
		WriteWith(c, status, be.Code, be.Message, be.Extra)
		return
	}

	extra := be.Extra
	if expose {
		extra = map[string]any{"message": err.Error()}
		if be.Err != nil {
			extra["message"] = be.Err.Error()
		}
	}
	WriteWith(c, status, be.Code, be.Message, extra)
}
