package files

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sidharth-A-691/code-generator/internal/errors"
	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

// creates a handler returning a project's file tree, derived from disk on
// every call so agent writes show up immediately
func TreeHandler(root *workspace.Root) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectName := c.Query("project_name")
		if projectName == "" {
			errors.BadRequest(c, "project_name is required", nil)
			return
		}

		tree, err := root.Tree(projectName)
		if err != nil {
			respondFileError(c, err, "project")
			return
		}

		c.JSON(http.StatusOK, tree)
	}
}

// creates a handler returning one file's content
func GetContentHandler(root *workspace.Root) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectName := c.Query("project_name")
		relativePath := c.Query("relative_path")

		if projectName == "" || relativePath == "" {
			errors.BadRequest(c, "project_name and relative_path are required", nil)
			return
		}

		content, err := root.ReadFile(projectName, relativePath)
		if err != nil {
			respondFileError(c, err, "file")
			return
		}

		c.JSON(http.StatusOK, ContentResponse{Content: content})
	}
}

// creates a handler writing one file, creating parent directories as needed
func WriteContentHandler(root *workspace.Root) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WriteRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if err := root.WriteFile(req.Content, req.ProjectName, req.RelativePath); err != nil {
			if stderrors.Is(err, workspace.ErrPathEscape) {
				errors.PathEscape(c, err)
				return
			}

			errors.InternalError(c, "failed to write file", err)

			return
		}

		c.JSON(http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("File '%s' written successfully.", req.RelativePath),
		})
	}
}

// maps workspace errors onto responses: escapes are client errors, missing
// targets are 404, everything else is a server error
func respondFileError(c *gin.Context, err error, resource string) {
	switch {
	case stderrors.Is(err, workspace.ErrPathEscape):
		errors.PathEscape(c, err)
	case stderrors.Is(err, fs.ErrNotExist):
		errors.NotFound(c, resource)
	default:
		errors.InternalError(c, "failed to access "+resource, err)
	}
}
