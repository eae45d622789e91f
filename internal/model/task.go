package model

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "Todo"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

// TaskStatuses lists every status in workflow order.
var TaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskDone}

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// TaskPriorities lists every priority from least to most urgent.
var TaskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is a known task priority.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank returns the ordering weight used when sorting by priority.
// High outranks Medium outranks Low; alphabetical order of the labels
// must never leak into sort results.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Task belongs to exactly one project and is removed when that project
// is deleted. AssigneeName is a denormalized copy of the assignee's
// roster name, recomputed on every read and write; an empty AssigneeID
// means unassigned.
type Task struct {
	ID             string       `json:"id"`
	ProjectID      string       `json:"project_id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	AssigneeID     string       `json:"assignee_id,omitempty"`
	AssigneeName   string       `json:"assignee_name,omitempty"`
	DueDate        *time.Time   `json:"due_date,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	LastModifiedAt time.Time    `json:"last_modified_at"`
	Photos         []string     `json:"photos"`
}

// NewTask carries the caller-supplied fields for task creation.
type NewTask struct {
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	AssigneeID  string
	DueDate     *time.Time
	Photos      []string
}

// TaskUpdate is a partial update. Nil fields leave the record untouched.
// AssigneeID pointing at an empty string clears the assignee;
// ClearDueDate removes the due date.
type TaskUpdate struct {
	Title        *string
	Description  *string
	Status       *TaskStatus
	Priority     *TaskPriority
	AssigneeID   *string
	DueDate      *time.Time
	ClearDueDate bool
	Photos       *[]string
}
