package generate

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sidharth-A-691/code-generator/api/rest/pagination"
	"github.com/Sidharth-A-691/code-generator/internal/errors"
	"github.com/Sidharth-A-691/code-generator/internal/generation"
	"github.com/Sidharth-A-691/code-generator/internal/runs"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

// Generator starts a generation run
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (*generation.Result, error)
}

// creates a handler for the synchronous generation phase: plan, record the
// run, hand off to the background executor
func Handler(svc Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result, err := svc.Generate(c.Request.Context(), generation.Request{
			UserStories: req.UserStories,
			ProjectType: req.ProjectType,
			Language:    req.Language,
		})
		if err != nil {
			errors.BadGateway(c, "Failed to generate project plan", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Message:         result.Message,
			HighLevelDesign: result.HighLevelDesign,
			LowLevelDesign:  result.LowLevelDesign,
			RunID:           result.RunID,
		})
	}
}

// creates a handler returning one run record
func GetRunHandler(store *runs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		run, ok := store.Get(c.Param("id"))
		if !ok {
			errors.NotFound(c, "run")
			return
		}

		c.JSON(http.StatusOK, run)
	}
}

// creates a handler listing recent runs, newest first
func ListRunsHandler(store *runs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.Parse(c.Query("limit"), c.Query("offset"), defaultRunsLimit, maxRunsLimit)

		c.JSON(http.StatusOK, RunsResponse{
			Runs:       store.List(params.Limit, params.Offset),
			Pagination: pagination.NewMeta(params, store.Count()),
		})
	}
}

// creates a handler cancelling an in-flight run
func CancelRunHandler(store *runs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		run, err := store.Cancel(c.Param("id"))
		if err != nil {
			switch err {
			case runs.ErrNotFound:
				errors.NotFound(c, "run")
			case runs.ErrFinished:
				errors.Conflict(c, "run already finished")
			default:
				errors.InternalError(c, "failed to cancel run", err)
			}

			return
		}

		c.JSON(http.StatusOK, run)
	}
}
