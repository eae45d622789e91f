package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/repository"
)

// TaskService provides business logic for tasks.
type TaskService interface {
	ListByProject(ctx context.Context, projectID string) ([]*model.Task, error)
	ListAll(ctx context.Context) ([]*model.Task, error)
	GetByID(ctx context.Context, id string) (*model.Task, error)
	Create(ctx context.Context, projectID string, in model.NewTask) (*model.Task, error)
	Update(ctx context.Context, id string, in model.TaskUpdate) (*model.Task, error)
	Delete(ctx context.Context, id string) error
}

type taskService struct {
	store repository.Store
}

// NewTaskService creates a TaskService.
func NewTaskService(store repository.Store) TaskService {
	return &taskService{store: store}
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]*model.Task, error) {
	return s.store.ListTasks(ctx, projectID)
}

func (s *taskService) ListAll(ctx context.Context) ([]*model.Task, error) {
	return s.store.ListAllTasks(ctx)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*model.Task, error) {
	return s.store.GetTask(ctx, id)
}

func (s *taskService) Create(ctx context.Context, projectID string, in model.NewTask) (*model.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if in.Status == "" {
		in.Status = model.TaskTodo
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, in.Status)
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalid, in.Priority)
	}
	return s.store.CreateTask(ctx, projectID, in)
}

func (s *taskService) Update(ctx context.Context, id string, in model.TaskUpdate) (*model.Task, error) {
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
	if in.Priority != nil && !in.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalid, *in.Priority)
	}
	return s.store.UpdateTask(ctx, id, in)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteTask(ctx, id)
}
