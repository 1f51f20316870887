package service

import (
	"context"

	"github.com/devhub/devhub/auth"
	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
	"github.com/devhub/devhub/models"
	"github.com/devhub/devhub/store"
)

// ProjectService exposes project CRUD with the platform's ownership rules.
type ProjectService struct {
	Projects store.ProjectStore
}

func NewProjectService(projects store.ProjectStore) *ProjectService {
	return &ProjectService{Projects: projects}
}

func (s *ProjectService) Create(ctx context.Context, p *auth.Principal, req dto.ProjectRequest) (*models.Project, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		DemoURL:     req.DemoURL,
		TechStack:   req.TechStack,
		CreatedByID: p.ID,
	}
	if err := s.Projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetByID(ctx context.Context, p *auth.Principal, id uint64) (*models.Project, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Projects.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, p *auth.Principal) ([]models.Project, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Projects.List(ctx)
}

func (s *ProjectService) ListByCreator(ctx context.Context, p *auth.Principal, creatorID uint64) ([]models.Project, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Projects.ListByCreator(ctx, creatorID)
}

func (s *ProjectService) Update(ctx context.Context, p *auth.Principal, id uint64, req dto.ProjectRequest) (*models.Project, error) {
	project, err := s.Projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(p, project.CreatedByID, auth.RoleAdmin); err != nil {
		return nil, err
	}
	project.Title = req.Title
	project.Description = req.Description
	project.URL = req.URL
	project.DemoURL = req.DemoURL
	project.TechStack = req.TechStack
	if err := s.Projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, p *auth.Principal, id uint64) error {
	project, err := s.Projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(p, project.CreatedByID, auth.RoleAdmin); err != nil {
		return err
	}
	return s.Projects.Delete(ctx, project)
}
