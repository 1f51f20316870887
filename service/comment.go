package service

import (
	"context"
	"strings"
	"time"

	"github.com/devhub/devhub/auth"
	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
	"github.com/devhub/devhub/models"
	"github.com/devhub/devhub/store"
)

// CommentService exposes comment CRUD. A comment references exactly one
// parent, a blog post or a project, resolved at creation time.
type CommentService struct {
	Comments store.CommentStore
	Posts    store.BlogPostStore
	Projects store.ProjectStore
}

func NewCommentService(comments store.CommentStore, posts store.BlogPostStore, projects store.ProjectStore) *CommentService {
	return &CommentService{Comments: comments, Posts: posts, Projects: projects}
}

// Create resolves the parent reference before anything is persisted. An
// unrecognized parent type fails without touching the store; a missing parent
// fails with NotFound and no comment is written.
func (s *CommentService) Create(ctx context.Context, p *auth.Principal, req dto.CommentCreateRequest) (*models.Comment, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}

	var parent models.CommentParent
	switch strings.ToLower(req.ParentType) {
	case string(models.ParentBlogPost):
		if _, err := s.Posts.FindByID(ctx, req.ParentID); err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				return nil, errors.WithMessagef(errors.ErrNotFound, "blog post not found with id: %d", req.ParentID)
			}
			return nil, err
		}
		parent = models.CommentParent{Kind: models.ParentBlogPost, ID: req.ParentID}
	case string(models.ParentProject):
		if _, err := s.Projects.FindByID(ctx, req.ParentID); err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				return nil, errors.WithMessagef(errors.ErrNotFound, "project not found with id: %d", req.ParentID)
			}
			return nil, err
		}
		parent = models.CommentParent{Kind: models.ParentProject, ID: req.ParentID}
	default:
		return nil, errors.WithMessagef(errors.ErrInvalidArgument, "invalid parent type for comment: %s", req.ParentType)
	}

	comment := &models.Comment{
		Content:     req.Content,
		UserID:      p.ID,
		CommentedAt: time.Now(),
	}
	comment.SetParent(parent)
	if err := s.Comments.Save(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetByID(ctx context.Context, p *auth.Principal, id uint64) (*models.Comment, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Comments.FindByID(ctx, id)
}

func (s *CommentService) List(ctx context.Context, p *auth.Principal) ([]models.Comment, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Comments.List(ctx)
}

func (s *CommentService) ListByUser(ctx context.Context, p *auth.Principal, userID uint64) ([]models.Comment, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Comments.ListByUser(ctx, userID)
}

func (s *CommentService) ListByBlogPost(ctx context.Context, p *auth.Principal, blogPostID uint64) ([]models.Comment, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Comments.ListByBlogPost(ctx, blogPostID)
}

func (s *CommentService) ListByProject(ctx context.Context, p *auth.Principal, projectID uint64) ([]models.Comment, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Comments.ListByProject(ctx, projectID)
}

// Update changes the content only. The parent references and the commenter
// are never overwritten.
func (s *CommentService) Update(ctx context.Context, p *auth.Principal, id uint64, req dto.CommentUpdateRequest) (*models.Comment, error) {
	comment, err := s.Comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(p, comment.UserID, auth.RoleAdmin); err != nil {
		return nil, err
	}
	comment.Content = req.Content
	if err := s.Comments.Save(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, p *auth.Principal, id uint64) error {
	comment, err := s.Comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(p, comment.UserID, auth.RoleAdmin); err != nil {
		return err
	}
	return s.Comments.Delete(ctx, comment)
}
