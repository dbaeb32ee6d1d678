package files

import (
	"github.com/gin-gonic/gin"

	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

// registers file browsing and editing routes
func RegisterRoutes(router *gin.RouterGroup, root *workspace.Root) {
	filesGroup := router.Group("/files")
	{
		filesGroup.GET("/tree", TreeHandler(root))
		filesGroup.GET("/content", GetContentHandler(root))
		filesGroup.POST("/content", WriteContentHandler(root))
	}
}
