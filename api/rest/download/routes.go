package download

import (
	"github.com/gin-gonic/gin"

	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

// registers the project download route
func RegisterRoutes(router *gin.RouterGroup, root *workspace.Root) {
	router.POST("/download", Handler(root))
}
