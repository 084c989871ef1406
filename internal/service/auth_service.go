package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/devfolio/devfolio/internal/dto"
	"github.com/devfolio/devfolio/internal/model"
	"github.com/devfolio/devfolio/internal/repository"
	"github.com/devfolio/devfolio/pkg/apperror"
	"github.com/devfolio/devfolio/pkg/validator"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(ctx context.Context, input dto.SignupInput) (*model.User, error)
	// Verify returns the user when id and password match exactly. Mismatch
	// and not-found both surface as ErrInvalidCredentials so callers cannot
	// distinguish them.
	Verify(ctx context.Context, userID, password string) (*model.User, error)
}

type authService struct {
	users       repository.UserRepository
	siteConfigs repository.SiteConfigRepository
}

func NewAuthService(users repository.UserRepository, siteConfigs repository.SiteConfigRepository) AuthService {
	return &authService{
		users:       users,
		siteConfigs: siteConfigs,
	}
}

func (s *authService) Signup(ctx context.Context, input dto.SignupInput) (*model.User, error) {
	// Slug validation happens before any store contact.
	if !validator.IsSlug(input.UserID) {
		return nil, apperror.New(400, "User ID must be lowercase alphanumeric (min 3 chars).", apperror.ErrInvalidInput)
	}

	exists, err := s.users.Exists(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.ErrUserExists
	}

	user := &model.User{
		ID:       input.UserID,
		Username: input.Username,
		Password: input.Password,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// The default site config is written separately, not in a transaction
	// with the user row. A failure here leaves the account without a config
	// document; getSiteConfig falls back to defaults in that case.
	config := model.DefaultSiteConfig()
	config.UserID = user.ID
	config.WebsiteTitle = fmt.Sprintf("%s's Portfolio", user.Username)
	if err := s.siteConfigs.Save(ctx, &config); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Verify(ctx context.Context, userID, password string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}
