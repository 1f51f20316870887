package models

import "time"

// ParentKind discriminates the resource a comment is attached to.
type ParentKind string

const (
	ParentBlogPost ParentKind = "blog"
	ParentProject  ParentKind = "project"
)

// CommentParent is a tagged reference to exactly one parent resource.
type CommentParent struct {
	Kind ParentKind
	ID   uint64
}

// Comment is a user comment on exactly one blog post or one project.
// The two foreign keys back the tagged parent; SetParent keeps the
// "exactly one" invariant by clearing the other.
type Comment struct {
	ID          uint64    `gorm:"column:id;primaryKey" json:"id"`
	Content     string    `gorm:"column:content" json:"content"`
	UserID      uint64    `gorm:"column:user_id;index" json:"userId"`
	BlogPostID  *uint64   `gorm:"column:blog_post_id;index" json:"blogPostId,omitempty"`
	ProjectID   *uint64   `gorm:"column:project_id;index" json:"projectId,omitempty"`
	CommentedAt time.Time `gorm:"column:commented_at" json:"commentedAt"`
}

func (Comment) TableName() string { return "comments" }

// SetParent attaches the comment to a single parent, clearing the other
// reference.
func (c *Comment) SetParent(p CommentParent) {
	switch p.Kind {
	case ParentBlogPost:
		id := p.ID
		c.BlogPostID = &id
		c.ProjectID = nil
	case ParentProject:
		id := p.ID
		c.ProjectID = &id
		c.BlogPostID = nil
	}
}

// Parent returns the tagged parent reference.
func (c *Comment) Parent() CommentParent {
	if c.BlogPostID != nil {
		return CommentParent{Kind: ParentBlogPost, ID: *c.BlogPostID}
	}
	if c.ProjectID != nil {
		return CommentParent{Kind: ParentProject, ID: *c.ProjectID}
	}
	return CommentParent{}
}
