package repository

import (
	"context"

	"github.com/devfolio/devfolio/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteConfigRepository interface {
	FindByUserID(ctx context.Context, userID string) (*model.SiteConfig, error)
	Save(ctx context.Context, config *model.SiteConfig) error
}

type siteConfigRepository struct {
	db *gorm.DB
}

func NewSiteConfigRepository(db *gorm.DB) SiteConfigRepository {
	return &siteConfigRepository{db: db}
}

func (r *siteConfigRepository) FindByUserID(ctx context.Context, userID string) (*model.SiteConfig, error) {
	var config model.SiteConfig
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&config).Error; err != nil {
		return nil, err
	}

	return &config, nil
}

// Save upserts the whole document: the configuration is overwritten
// wholesale, never merged field by field.
func (r *siteConfigRepository) Save(ctx context.Context, config *model.SiteConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(config).Error
}
