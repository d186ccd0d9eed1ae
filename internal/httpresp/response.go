package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type ListResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Message answers with a human readable confirmation next to the data.
func Message(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	Message(c, http.StatusCreated, message, data)
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Success: true,
		Count:   len(data),
		Data:    data,
	})
}

// ListWith is List plus extra top-level fields (e.g. searchTerm).
func ListWith[T any](c *gin.Context, data []T, extra gin.H) {
	if data == nil {
		data = []T{}
	}
	body := gin.H{
		"success": true,
		"count":   len(data),
		"data":    data,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
