package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/devfolio/devfolio/internal/dto"
	"github.com/devfolio/devfolio/internal/model"
	"github.com/devfolio/devfolio/internal/repository"
	"github.com/devfolio/devfolio/pkg/apperror"
	"gorm.io/gorm"
)

type ProjectService interface {
	// List returns the owner's projects in display order. Store failures
	// degrade to an empty list.
	List(ctx context.Context, ownerID string) []*model.Project
	Get(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, input dto.ProjectInput) (*model.Project, error)
	Update(ctx context.Context, id string, input dto.ProjectUpdateInput) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type projectService struct {
	projects repository.ProjectRepository
}

func NewProjectService(projects repository.ProjectRepository) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) List(ctx context.Context, ownerID string) []*model.Project {
	projects, err := s.projects.FindByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("failed to fetch projects for %s: %v", ownerID, err)
		return []*model.Project{}
	}

	model.SortProjects(projects)
	return projects
}

func (s *projectService) Get(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return project, nil
}

func (s *projectService) Create(ctx context.Context, input dto.ProjectInput) (*model.Project, error) {
	// New projects get createdAt and order stamped to the same timestamp, so
	// never-reordered lists fall back to creation sequence.
	now := time.Now().UnixMilli()
	order := now

	project := &model.Project{
		OwnerID:   input.OwnerID,
		TitleEN:   input.TitleEN,
		TitleZH:   input.TitleZH,
		DescEN:    input.DescEN,
		DescZH:    input.DescZH,
		ContentEN: input.ContentEN,
		ContentZH: input.ContentZH,
		Tags:      input.Tags,
		ImageURL:  input.ImageURL,
		GithubURL: input.GithubURL,
		DemoURL:   input.DemoURL,
		Featured:  input.Featured,
		Order:     &order,
		CreatedAt: now,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) Update(ctx context.Context, id string, input dto.ProjectUpdateInput) error {
	return s.projects.UpdateFields(ctx, id, input.Fields())
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func (s *projectService) Reorder(ctx context.Context, ids []string) error {
	return s.projects.SaveOrder(ctx, ids)
}
