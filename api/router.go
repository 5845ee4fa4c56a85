package api

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine with all routes registered.
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	SetupRoutes(router, handler)
	return router
}

// SetupRoutes registers the API routes on an existing engine.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.Health)
	router.POST("/search", handler.Search)
	router.GET("/leads", handler.GetLeads)
}
