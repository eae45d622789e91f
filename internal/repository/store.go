package repository

import (
	"context"

	"github.com/taskdeck/backend/internal/model"
)

// Store is the sole authority over projects, tasks, comments, the user
// roster and the activity feed. All mutations pass through it; each
// mutating operation records exactly one activity entry attributed to
// the user carried in the context (pkg/auth), and deletions cascade to
// dependent records without logging the cascaded children.
//
// Missing targets are reported as ErrNotFound across the whole
// operation set, reads and writes alike.
type Store interface {
	// ListUsers returns a snapshot of the fixed user roster.
	ListUsers(ctx context.Context) ([]*model.User, error)

	// ListProjects returns a snapshot of all projects in insertion order.
	ListProjects(ctx context.Context) ([]*model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	CreateProject(ctx context.Context, in model.NewProject) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, in model.ProjectUpdate) (*model.Project, error)
	// DeleteProject removes the project and cascades to its tasks, their
	// comments and activity entries scoped to the project. The deletion
	// itself is recorded after the cascade and survives it.
	DeleteProject(ctx context.Context, id string) error

	// ListTasks returns the project's tasks with AssigneeName freshly
	// resolved from the roster. A deleted or unknown project yields an
	// empty slice, not an error.
	ListTasks(ctx context.Context, projectID string) ([]*model.Task, error)
	// ListAllTasks returns every task across all projects, enriched the
	// same way. Used for dashboard aggregation.
	ListAllTasks(ctx context.Context) ([]*model.Task, error)
	GetTask(ctx context.Context, id string) (*model.Task, error)
	CreateTask(ctx context.Context, projectID string, in model.NewTask) (*model.Task, error)
	UpdateTask(ctx context.Context, id string, in model.TaskUpdate) (*model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// ListComments returns the task's comments ordered oldest first.
	ListComments(ctx context.Context, taskID string) ([]*model.Comment, error)
	AddComment(ctx context.Context, taskID, text string) (*model.Comment, error)

	// ListActivity returns up to limit entries newest first, optionally
	// restricted to one project (empty projectID = global feed).
	ListActivity(ctx context.Context, projectID string, limit int) ([]*model.ActivityEntry, error)
}
