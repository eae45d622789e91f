package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/repository"
)

// ProjectService provides business logic for projects.
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, in model.NewProject) (*model.Project, error)
	Update(ctx context.Context, id string, in model.ProjectUpdate) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	store repository.Store
}

// NewProjectService creates a ProjectService.
func NewProjectService(store repository.Store) ProjectService {
	return &projectService{store: store}
}

func (s *projectService) List(ctx context.Context) ([]*model.Project, error) {
	return s.store.ListProjects(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.store.GetProject(ctx, id)
}

func (s *projectService) Create(ctx context.Context, in model.NewProject) (*model.Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if in.Status == "" {
		in.Status = model.ProjectActive
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, in.Status)
	}
	return s.store.CreateProject(ctx, in)
}

func (s *projectService) Update(ctx context.Context, id string, in model.ProjectUpdate) (*model.Project, error) {
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalid)
		}
		in.Title = &title
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, *in.Status)
	}
	return s.store.UpdateProject(ctx, id, in)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteProject(ctx, id)
}
