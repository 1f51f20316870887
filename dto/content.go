package dto

// BlogPostRequest is the create/update payload for a blog post. Only these
// fields are ever copied onto the stored record.
type BlogPostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// ProjectRequest is the create/update payload for a project.
type ProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	URL         string `json:"url"`
	DemoURL     string `json:"demoUrl"`
	TechStack   string `json:"techStack" binding:"required"`
}

// CommentCreateRequest attaches a new comment to exactly one parent.
// ParentType is matched case-insensitively against "blog" and "project".
type CommentCreateRequest struct {
	Content    string `json:"content" binding:"required"`
	ParentType string `json:"parentType" binding:"required"`
	ParentID   uint64 `json:"parentId" binding:"required"`
}

// CommentUpdateRequest carries the only mutable comment field.
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required"`
}
