package repository

import (
	"context"

	"github.com/devfolio/devfolio/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	FindByOwner(ctx context.Context, ownerID string) ([]*model.Project, error)
	FindByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	SaveOrder(ctx context.Context, ids []string) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) FindByOwner(ctx context.Context, ownerID string) ([]*model.Project, error) {
	var projects []*model.Project
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *projectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id).Error
}

// SaveOrder rewrites sort_order for every listed project to its position in
// ids, as a single transaction so the sequence is committed all-or-nothing.
func (r *projectRepository) SaveOrder(ctx context.Context, ids []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			if err := tx.Model(&model.Project{}).
				Where("id = ?", id).
				UpdateColumn("sort_order", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
