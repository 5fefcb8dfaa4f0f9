package main

import (
	"auditforce/internal/httpapi"
	"auditforce/internal/obs"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires the public endpoints and the /v1 API surface.
// Keep this file free of business logic.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, authMW gin.HandlerFunc) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", obs.Handler())

	httpapi.Register(r, h, authMW)
}
