package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, diffHandler *handler.DiffHandler) {
	diffRoutes := router.Group("/diff")
	{
		// POST /diff
		diffRoutes.POST("", diffHandler.ComputeDiff)

		// GET /diff/history
		diffRoutes.GET("/history", diffHandler.GetHistory)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
