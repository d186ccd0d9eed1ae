package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/salon-api/internal/db"
)

const Version = "1.0.0"

type SystemHandler struct {
	db *gorm.DB
}

func NewSystemHandler(db *gorm.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Salon Management API",
		"version": Version,
		"status":  "running",
		"project": "Salon management system",
		"endpoints": gin.H{
			"health":   "/api/health",
			"clients":  "/api/clients",
			"services": "/api/services",
			"metrics":  "/metrics",
		},
	})
}

// Health answers 503 when the pool cannot reach the database.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	now, err := dbpkg.Now(ctx, h.db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": now,
	})
}

func (h *SystemHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "route not found",
		"path":    c.Request.URL.Path,
		"method":  c.Request.Method,
	})
}
