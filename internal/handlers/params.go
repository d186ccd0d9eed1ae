package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
)

var appointmentsEmpty = []dto.ClientAppointmentDTO{}

// paramID reads :id. Anything that is not a positive integer cannot match a
// row, so it is reported as not found with the raw value echoed.
func paramID(c *gin.Context, entity string) (uint, bool) {
	raw := c.Param("id")

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.Abort(c, httperr.NotFoundID(entity, raw))
		return 0, false
	}

	return uint(id), true
}

// bindJSON decodes the body. An empty body is treated as an empty object.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		httperr.Abort(c, httperr.ErrValidation("invalid_request", "malformed JSON body"))
		return false
	}
	return true
}

// queryInt returns the integer value of key, or 0 when absent or invalid.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
