package generate

import (
	"github.com/Sidharth-A-691/code-generator/api/rest/pagination"
	"github.com/Sidharth-A-691/code-generator/internal/runs"
)

// Request represents the request body for code generation
type Request struct {
	UserStories string `json:"user_stories" binding:"required"`
	ProjectType string `json:"project_type" binding:"required"`
	Language    string `json:"language" binding:"required"`
}

// Response is the synchronous reply: both design documents plus the run id
// the caller can poll while scaffolding continues in the background
type Response struct {
	Message         string `json:"message"`
	HighLevelDesign string `json:"high_level_design"`
	LowLevelDesign  string `json:"low_level_design"`
	RunID           string `json:"run_id"`
}

// RunsResponse wraps the run listing with pagination
type RunsResponse struct {
	Runs       []*runs.Run     `json:"runs"`
	Pagination pagination.Meta `json:"pagination"`
}
