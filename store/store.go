package store

import (
	"context"

	"github.com/devhub/devhub/models"
)

// UserStore persists user records. Lookups that miss return ErrNotFound.
type UserStore interface {
	FindByID(ctx context.Context, id uint64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SearchByUsername(ctx context.Context, fragment string) ([]models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, u *models.User) error
}

// BlogPostStore persists blog posts.
type BlogPostStore interface {
	FindByID(ctx context.Context, id uint64) (*models.BlogPost, error)
	List(ctx context.Context) ([]models.BlogPost, error)
	ListByAuthor(ctx context.Context, authorID uint64) ([]models.BlogPost, error)
	Save(ctx context.Context, p *models.BlogPost) error
	Delete(ctx context.Context, p *models.BlogPost) error
}

// ProjectStore persists projects.
type ProjectStore interface {
	FindByID(ctx context.Context, id uint64) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	ListByCreator(ctx context.Context, creatorID uint64) ([]models.Project, error)
	Save(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, p *models.Project) error
}

// CommentStore persists comments.
type CommentStore interface {
	FindByID(ctx context.Context, id uint64) (*models.Comment, error)
	List(ctx context.Context) ([]models.Comment, error)
	ListByUser(ctx context.Context, userID uint64) ([]models.Comment, error)
	ListByBlogPost(ctx context.Context, blogPostID uint64) ([]models.Comment, error)
	ListByProject(ctx context.Context, projectID uint64) ([]models.Comment, error)
	Save(ctx context.Context, c *models.Comment) error
	Delete(ctx context.Context, c *models.Comment) error
}

// Stores bundles one implementation of every entity store.
type Stores struct {
	Users     UserStore
	BlogPosts BlogPostStore
	Projects  ProjectStore
	Comments  CommentStore
}
