package download

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Sidharth-A-691/code-generator/internal/errors"
	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

// creates a handler that archives a project directory and streams the zip
// back; the temporary archive is removed once the response has been sent
func Handler(root *workspace.Root) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		archivePath, cleanup, err := root.Zip(req.ProjectName)
		if err != nil {
			switch {
			case stderrors.Is(err, workspace.ErrPathEscape):
				errors.PathEscape(c, err)
			case stderrors.Is(err, fs.ErrNotExist):
				errors.NotFound(c, "project")
			default:
				errors.InternalError(c, "failed to archive project", err)
			}

			return
		}
		defer cleanup()

		c.FileAttachment(archivePath, filepath.Base(req.ProjectName)+".zip")
	}
}
