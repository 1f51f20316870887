package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/devhub/devhub/models"
)

// ProjectSQLStore provides project operations over gorm.
type ProjectSQLStore struct {
	DB *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectSQLStore { return &ProjectSQLStore{DB: db} }

func (s *ProjectSQLStore) FindByID(ctx context.Context, id uint64) (*models.Project, error) {
	var p models.Project
	if err := s.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *ProjectSQLStore) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.DB.WithContext(ctx).Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectSQLStore) ListByCreator(ctx context.Context, creatorID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := s.DB.WithContext(ctx).Where("created_by_id = ?", creatorID).Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectSQLStore) Save(ctx context.Context, p *models.Project) error {
	return s.DB.WithContext(ctx).Save(p).Error
}

func (s *ProjectSQLStore) Delete(ctx context.Context, p *models.Project) error {
	return s.DB.WithContext(ctx).Delete(p).Error
}
