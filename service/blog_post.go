package service

import (
	"context"

	"github.com/devhub/devhub/auth"
	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
	"github.com/devhub/devhub/models"
	"github.com/devhub/devhub/store"
)

// BlogPostService exposes blog post CRUD with the platform's ownership rules.
// The acting principal is always passed explicitly; nil means Anonymous.
type BlogPostService struct {
	Posts store.BlogPostStore
}

func NewBlogPostService(posts store.BlogPostStore) *BlogPostService {
	return &BlogPostService{Posts: posts}
}

// Create stamps the author from the resolved principal. The author is never
// taken from client input.
func (s *BlogPostService) Create(ctx context.Context, p *auth.Principal, req dto.BlogPostRequest) (*models.BlogPost, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	post := &models.BlogPost{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		AuthorID: p.ID,
	}
	if err := s.Posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogPostService) GetByID(ctx context.Context, p *auth.Principal, id uint64) (*models.BlogPost, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Posts.FindByID(ctx, id)
}

func (s *BlogPostService) List(ctx context.Context, p *auth.Principal) ([]models.BlogPost, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Posts.List(ctx)
}

func (s *BlogPostService) ListByAuthor(ctx context.Context, p *auth.Principal, authorID uint64) ([]models.BlogPost, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Posts.ListByAuthor(ctx, authorID)
}

// Update copies the mutable fields onto the existing record. Identity, owner
// and creation timestamp are never overwritten.
func (s *BlogPostService) Update(ctx context.Context, p *auth.Principal, id uint64, req dto.BlogPostRequest) (*models.BlogPost, error) {
	post, err := s.Posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(p, post.AuthorID, auth.RoleAdmin); err != nil {
		return nil, err
	}
	post.Title = req.Title
	post.Content = req.Content
	post.Tags = req.Tags
	if err := s.Posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogPostService) Delete(ctx context.Context, p *auth.Principal, id uint64) error {
	post, err := s.Posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(p, post.AuthorID, auth.RoleAdmin); err != nil {
		return err
	}
	return s.Posts.Delete(ctx, post)
}
