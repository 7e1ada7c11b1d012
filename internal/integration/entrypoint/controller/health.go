// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthy func() bool
}

// NewHealthController creates a new health controller instance. dbHealthy
// reports database connectivity.
func NewHealthController(dbHealthy func() bool) *HealthController {
	return &HealthController{dbHealthy: dbHealthy}
}

// Check handles GET /health requests. The process is considered live even
// when the database is down; the body distinguishes the two.
func (c *HealthController) Check(ctx *gin.Context) {
	dbStatus := "ok"
	if c.dbHealthy != nil && !c.dbHealthy() {
		dbStatus = "unavailable"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
