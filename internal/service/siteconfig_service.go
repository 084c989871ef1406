package service

import (
	"context"
	"errors"
	"log"

	"github.com/devfolio/devfolio/internal/model"
	"github.com/devfolio/devfolio/internal/repository"
	"gorm.io/gorm"
)

type SiteConfigService interface {
	// Get never fails: a missing document or store error yields the default
	// configuration.
	Get(ctx context.Context, userID string) *model.SiteConfig
	Save(ctx context.Context, userID string, config model.SiteConfig) error
}

type siteConfigService struct {
	configs repository.SiteConfigRepository
}

func NewSiteConfigService(configs repository.SiteConfigRepository) SiteConfigService {
	return &siteConfigService{configs: configs}
}

func (s *siteConfigService) Get(ctx context.Context, userID string) *model.SiteConfig {
	config, err := s.configs.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("failed to fetch site config for %s: %v", userID, err)
		}
		defaults := model.DefaultSiteConfig()
		defaults.UserID = userID
		return &defaults
	}

	return config
}

func (s *siteConfigService) Save(ctx context.Context, userID string, config model.SiteConfig) error {
	config.UserID = userID
	return s.configs.Save(ctx, &config)
}
