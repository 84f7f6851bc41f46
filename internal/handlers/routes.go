// Package handlers wires gin routes to the engine and store.
package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route this service exposes.
func RegisterRoutes(router *gin.Engine, gameHandler *GameHandler) {
	router.GET("/api/health", gameHandler.Health)

	api := router.Group("/api/game")
	{
		api.POST("/last", gameHandler.LastByCode)
	}
}
