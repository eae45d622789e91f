package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskdeck/backend/internal/model"
)

func TestTaskService_Create_Defaults(t *testing.T) {
	mock := &mockStore{
		createTaskFunc: func(ctx context.Context, projectID string, in model.NewTask) (*model.Task, error) {
			if in.Status != model.TaskTodo {
				t.Errorf("expected default status Todo, got %q", in.Status)
			}
			if in.Priority != model.PriorityMedium {
				t.Errorf("expected default priority Medium, got %q", in.Priority)
			}
			return &model.Task{ID: "task-1", ProjectID: projectID}, nil
		},
	}
	svc := NewTaskService(mock)

	got, err := svc.Create(context.Background(), "proj-1", model.NewTask{Title: "T"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProjectID != "proj-1" {
		t.Errorf("unexpected task: %+v", got)
	}
}

func TestTaskService_Create_RequiresTitle(t *testing.T) {
	svc := NewTaskService(&mockStore{})

	_, err := svc.Create(context.Background(), "proj-1", model.NewTask{})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestTaskService_Create_RejectsUnknownPriority(t *testing.T) {
	svc := NewTaskService(&mockStore{})

	_, err := svc.Create(context.Background(), "proj-1", model.NewTask{Title: "T", Priority: "Urgent"})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestTaskService_Update_RejectsUnknownStatus(t *testing.T) {
	svc := NewTaskService(&mockStore{})

	bad := model.TaskStatus("Blocked")
	_, err := svc.Update(context.Background(), "task-1", model.TaskUpdate{Status: &bad})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestTaskService_Update_PassesThrough(t *testing.T) {
	status := model.TaskDone
	mock := &mockStore{
		updateTaskFunc: func(ctx context.Context, id string, in model.TaskUpdate) (*model.Task, error) {
			if id != "task-1" || in.Status == nil || *in.Status != model.TaskDone {
				t.Errorf("unexpected call: id=%s in=%+v", id, in)
			}
			return &model.Task{ID: id, Status: *in.Status}, nil
		},
	}
	svc := NewTaskService(mock)

	got, err := svc.Update(context.Background(), "task-1", model.TaskUpdate{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.TaskDone {
		t.Errorf("unexpected task: %+v", got)
	}
}
