package service

import (
	"context"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/repository"
)

// mockStore is a func-field mock of repository.Store. Unset fields
// return zero values.
type mockStore struct {
	listUsersFunc     func(ctx context.Context) ([]*model.User, error)
	listProjectsFunc  func(ctx context.Context) ([]*model.Project, error)
	getProjectFunc    func(ctx context.Context, id string) (*model.Project, error)
	createProjectFunc func(ctx context.Context, in model.NewProject) (*model.Project, error)
	updateProjectFunc func(ctx context.Context, id string, in model.ProjectUpdate) (*model.Project, error)
	deleteProjectFunc func(ctx context.Context, id string) error
	listTasksFunc     func(ctx context.Context, projectID string) ([]*model.Task, error)
	listAllTasksFunc  func(ctx context.Context) ([]*model.Task, error)
	getTaskFunc       func(ctx context.Context, id string) (*model.Task, error)
	createTaskFunc    func(ctx context.Context, projectID string, in model.NewTask) (*model.Task, error)
	updateTaskFunc    func(ctx context.Context, id string, in model.TaskUpdate) (*model.Task, error)
	deleteTaskFunc    func(ctx context.Context, id string) error
	listCommentsFunc  func(ctx context.Context, taskID string) ([]*model.Comment, error)
	addCommentFunc    func(ctx context.Context, taskID, text string) (*model.Comment, error)
	listActivityFunc  func(ctx context.Context, projectID string, limit int) ([]*model.ActivityEntry, error)
}

var _ repository.Store = (*mockStore)(nil)

func (m *mockStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) ListProjects(ctx context.Context) ([]*model.Project, error) {
	if m.listProjectsFunc != nil {
		return m.listProjectsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	if m.getProjectFunc != nil {
		return m.getProjectFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStore) CreateProject(ctx context.Context, in model.NewProject) (*model.Project, error) {
	if m.createProjectFunc != nil {
		return m.createProjectFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockStore) UpdateProject(ctx context.Context, id string, in model.ProjectUpdate) (*model.Project, error) {
	if m.updateProjectFunc != nil {
		return m.updateProjectFunc(ctx, id, in)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStore) DeleteProject(ctx context.Context, id string) error {
	if m.deleteProjectFunc != nil {
		return m.deleteProjectFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) ListTasks(ctx context.Context, projectID string) ([]*model.Task, error) {
	if m.listTasksFunc != nil {
		return m.listTasksFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockStore) ListAllTasks(ctx context.Context) ([]*model.Task, error) {
	if m.listAllTasksFunc != nil {
		return m.listAllTasksFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) GetTask(ctx context.Context, id string) (*model.Task, error) {
	if m.getTaskFunc != nil {
		return m.getTaskFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStore) CreateTask(ctx context.Context, projectID string, in model.NewTask) (*model.Task, error) {
	if m.createTaskFunc != nil {
		return m.createTaskFunc(ctx, projectID, in)
	}
	return nil, nil
}

func (m *mockStore) UpdateTask(ctx context.Context, id string, in model.TaskUpdate) (*model.Task, error) {
	if m.updateTaskFunc != nil {
		return m.updateTaskFunc(ctx, id, in)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStore) DeleteTask(ctx context.Context, id string) error {
	if m.deleteTaskFunc != nil {
		return m.deleteTaskFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) ListComments(ctx context.Context, taskID string) ([]*model.Comment, error) {
	if m.listCommentsFunc != nil {
		return m.listCommentsFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *mockStore) AddComment(ctx context.Context, taskID, text string) (*model.Comment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(ctx, taskID, text)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStore) ListActivity(ctx context.Context, projectID string, limit int) ([]*model.ActivityEntry, error) {
	if m.listActivityFunc != nil {
		return m.listActivityFunc(ctx, projectID, limit)
	}
	return nil, nil
}
