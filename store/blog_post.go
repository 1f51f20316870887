package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/devhub/devhub/models"
)

// BlogPostSQLStore provides blog post operations over gorm.
type BlogPostSQLStore struct {
	DB *gorm.DB
}

func NewBlogPostStore(db *gorm.DB) *BlogPostSQLStore { return &BlogPostSQLStore{DB: db} }

func (s *BlogPostSQLStore) FindByID(ctx context.Context, id uint64) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := s.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *BlogPostSQLStore) List(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := s.DB.WithContext(ctx).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *BlogPostSQLStore) ListByAuthor(ctx context.Context, authorID uint64) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := s.DB.WithContext(ctx).Where("author_id = ?", authorID).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *BlogPostSQLStore) Save(ctx context.Context, p *models.BlogPost) error {
	return s.DB.WithContext(ctx).Save(p).Error
}

func (s *BlogPostSQLStore) Delete(ctx context.Context, p *models.BlogPost) error {
	return s.DB.WithContext(ctx).Delete(p).Error
}
