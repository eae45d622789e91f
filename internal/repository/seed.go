package repository

import (
	"time"

	"github.com/taskdeck/backend/internal/model"
)

// DefaultUsers returns the fixed roster seeded at startup. The roster
// is immutable; user-1 is the default acting user.
func DefaultUsers() []*model.User {
	return []*model.User{
		{ID: "user-1", Name: "Alice", Email: "alice@example.com"},
		{ID: "user-2", Name: "Bob", Email: "bob@example.com"},
		{ID: "user-3", Name: "Charlie", Email: "charlie@example.com"},
		{ID: "user-4", Name: "Diana", Email: "diana@example.com"},
	}
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// SeedDemo loads a small demo dataset directly into the store. Records
// are inserted as-is, bypassing ID assignment and activity logging, so
// the feed starts empty.
func (s *MemoryStore) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = append(s.projects,
		&model.Project{
			ID:             "proj-1",
			Title:          "Develop Mobile App",
			Description:    "Create a cross-platform mobile application.",
			Status:         model.ProjectActive,
			Deadline:       date(2024, time.June, 30),
			CreatedAt:      *date(2024, time.January, 15),
			LastModifiedAt: *date(2024, time.March, 10),
		},
		&model.Project{
			ID:             "proj-2",
			Title:          "Website Redesign",
			Description:    "Update the company website with a modern look and feel.",
			Status:         model.ProjectOnHold,
			Deadline:       date(2024, time.August, 15),
			CreatedAt:      *date(2024, time.February, 1),
			LastModifiedAt: *date(2024, time.February, 20),
		},
		&model.Project{
			ID:             "proj-3",
			Title:          "Marketing Campaign",
			Description:    "Launch a new marketing campaign for Q3.",
			Status:         model.ProjectCompleted,
			CreatedAt:      *date(2023, time.November, 1),
			LastModifiedAt: *date(2024, time.January, 5),
		},
	)

	s.tasks = append(s.tasks,
		&model.Task{
			ID: "task-1-1", ProjectID: "proj-1",
			Title:       "Setup Project Structure",
			Description: "Initialize the project and install dependencies.",
			Status:      model.TaskDone, Priority: model.PriorityHigh,
			AssigneeID: "user-1", DueDate: date(2024, time.January, 20),
			CreatedAt: *date(2024, time.January, 16), LastModifiedAt: *date(2024, time.January, 18),
			Photos: []string{},
		},
		&model.Task{
			ID: "task-1-2", ProjectID: "proj-1",
			Title:       "Implement Login Screen",
			Description: "Create UI and logic for user authentication.",
			Status:      model.TaskInProgress, Priority: model.PriorityHigh,
			AssigneeID: "user-2", DueDate: date(2024, time.April, 15),
			CreatedAt: *date(2024, time.February, 1), LastModifiedAt: *date(2024, time.March, 25),
			Photos: []string{},
		},
		&model.Task{
			ID: "task-1-3", ProjectID: "proj-1",
			Title:       "Develop Dashboard UI",
			Description: "Design and implement the main dashboard view.",
			Status:      model.TaskTodo, Priority: model.PriorityMedium,
			AssigneeID: "user-1", DueDate: date(2024, time.May, 1),
			CreatedAt: *date(2024, time.March, 15), LastModifiedAt: *date(2024, time.March, 15),
			Photos: []string{},
		},
		&model.Task{
			ID: "task-2-1", ProjectID: "proj-2",
			Title:       "Gather Design Requirements",
			Description: "Meet with stakeholders to define the new design.",
			Status:      model.TaskDone, Priority: model.PriorityMedium,
			AssigneeID: "user-3",
			CreatedAt:  *date(2024, time.February, 5), LastModifiedAt: *date(2024, time.February, 10),
			Photos: []string{},
		},
		&model.Task{
			ID: "task-2-2", ProjectID: "proj-2",
			Title:       "Create Wireframes",
			Description: "Develop low-fidelity wireframes for key pages.",
			Status:      model.TaskTodo, Priority: model.PriorityMedium,
			AssigneeID: "user-3", DueDate: date(2024, time.April, 1),
			CreatedAt: *date(2024, time.February, 15), LastModifiedAt: *date(2024, time.February, 15),
			Photos: []string{},
		},
	)

	s.comments = append(s.comments,
		&model.Comment{
			ID: "cmt-1", TaskID: "task-1-2", AuthorID: "user-1",
			Text: "Need to add password validation.", CreatedAt: *date(2024, time.March, 26),
		},
		&model.Comment{
			ID: "cmt-2", TaskID: "task-1-2", AuthorID: "user-2",
			Text: "Working on it!", CreatedAt: *date(2024, time.March, 27),
		},
	)
}
