package files

// WriteRequest is the body for writing a file into a generated project.
// Content is not required so files can be emptied.
type WriteRequest struct {
	ProjectName  string `json:"project_name" binding:"required"`
	RelativePath string `json:"relative_path" binding:"required"`
	Content      string `json:"content"`
}

// ContentResponse wraps one file's content
type ContentResponse struct {
	Content string `json:"content"`
}

// MessageResponse confirms a write
type MessageResponse struct {
	Message string `json:"message"`
}
