package service

import (
	"context"
	"log"

	"github.com/devfolio/devfolio/internal/model"
	"github.com/devfolio/devfolio/internal/repository"
)

type UserService interface {
	// List returns every registered user. Store failures degrade to an
	// empty list.
	List(ctx context.Context) []*model.User
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) []*model.User {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		log.Printf("failed to fetch users: %v", err)
		return []*model.User{}
	}

	return users
}
