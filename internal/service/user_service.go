package service

import (
	"context"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/repository"
)

// UserService exposes the fixed user roster.
type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
}

type userService struct {
	store repository.Store
}

// NewUserService creates a UserService.
func NewUserService(store repository.Store) UserService {
	return &userService{store: store}
}

func (s *userService) List(ctx context.Context) ([]*model.User, error) {
	return s.store.ListUsers(ctx)
}
