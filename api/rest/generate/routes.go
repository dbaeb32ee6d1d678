package generate

import (
	"github.com/gin-gonic/gin"

	"github.com/Sidharth-A-691/code-generator/internal/runs"
)

// registers code generation routes; limitMiddleware guards the expensive
// planning call and may be nil in tests
func RegisterRoutes(router *gin.RouterGroup, svc Generator, store *runs.Store, limitMiddleware gin.HandlerFunc) {
	if limitMiddleware != nil {
		router.POST("/generate", limitMiddleware, Handler(svc))
	} else {
		router.POST("/generate", Handler(svc))
	}

	runsGroup := router.Group("/generate/runs")
	{
		runsGroup.GET("", ListRunsHandler(store))
		runsGroup.GET("/:id", GetRunHandler(store))
		runsGroup.POST("/:id/cancel", CancelRunHandler(store))
	}
}
