package download

// Request names the project to archive
type Request struct {
	ProjectName string `json:"project_name" binding:"required"`
}
