package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/devhub/devhub/models"
)

// CommentSQLStore provides comment operations over gorm.
type CommentSQLStore struct {
	DB *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentSQLStore { return &CommentSQLStore{DB: db} }

func (s *CommentSQLStore) FindByID(ctx context.Context, id uint64) (*models.Comment, error) {
	var c models.Comment
	if err := s.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (s *CommentSQLStore) List(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.DB.WithContext(ctx).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentSQLStore) ListByUser(ctx context.Context, userID uint64) ([]models.Comment, error) {
	return s.listWhere(ctx, "user_id = ?", userID)
}

func (s *CommentSQLStore) ListByBlogPost(ctx context.Context, blogPostID uint64) ([]models.Comment, error) {
	return s.listWhere(ctx, "blog_post_id = ?", blogPostID)
}

func (s *CommentSQLStore) ListByProject(ctx context.Context, projectID uint64) ([]models.Comment, error) {
	return s.listWhere(ctx, "project_id = ?", projectID)
}

func (s *CommentSQLStore) listWhere(ctx context.Context, cond string, arg uint64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.DB.WithContext(ctx).Where(cond, arg).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentSQLStore) Save(ctx context.Context, c *models.Comment) error {
	return s.DB.WithContext(ctx).Save(c).Error
}

func (s *CommentSQLStore) Delete(ctx context.Context, c *models.Comment) error {
	return s.DB.WithContext(ctx).Delete(c).Error
}
