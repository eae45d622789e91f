package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskdeck/backend/internal/model"
)

func TestProjectService_Create_RequiresTitle(t *testing.T) {
	called := false
	mock := &mockStore{
		createProjectFunc: func(ctx context.Context, in model.NewProject) (*model.Project, error) {
			called = true
			return &model.Project{}, nil
		},
	}
	svc := NewProjectService(mock)

	_, err := svc.Create(context.Background(), model.NewProject{Title: "   "})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	if called {
		t.Error("store must not be called on validation failure")
	}
}

func TestProjectService_Create_DefaultsStatus(t *testing.T) {
	mock := &mockStore{
		createProjectFunc: func(ctx context.Context, in model.NewProject) (*model.Project, error) {
			if in.Status != model.ProjectActive {
				t.Errorf("expected default status Active, got %q", in.Status)
			}
			return &model.Project{ID: "proj-1", Title: in.Title, Status: in.Status}, nil
		},
	}
	svc := NewProjectService(mock)

	got, err := svc.Create(context.Background(), model.NewProject{Title: "Alpha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "proj-1" {
		t.Errorf("unexpected project: %+v", got)
	}
}

func TestProjectService_Create_RejectsUnknownStatus(t *testing.T) {
	svc := NewProjectService(&mockStore{})

	_, err := svc.Create(context.Background(), model.NewProject{Title: "Alpha", Status: "Archived"})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestProjectService_Update_RejectsEmptyTitle(t *testing.T) {
	svc := NewProjectService(&mockStore{})

	empty := ""
	_, err := svc.Update(context.Background(), "proj-1", model.ProjectUpdate{Title: &empty})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestProjectService_Update_TrimsTitle(t *testing.T) {
	mock := &mockStore{
		updateProjectFunc: func(ctx context.Context, id string, in model.ProjectUpdate) (*model.Project, error) {
			if in.Title == nil || *in.Title != "Alpha" {
				t.Errorf("expected trimmed title, got %v", in.Title)
			}
			return &model.Project{ID: id}, nil
		},
	}
	svc := NewProjectService(mock)

	padded := "  Alpha  "
	if _, err := svc.Update(context.Background(), "proj-1", model.ProjectUpdate{Title: &padded}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
