package model

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "On Hold"
	ProjectCompleted ProjectStatus = "Completed"
)

// ProjectStatuses lists every status in display order. Aggregations over
// projects must emit a count for each of these, zero-filled if absent.
var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectOnHold, ProjectCompleted}

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectOnHold, ProjectCompleted:
		return true
	}
	return false
}

type Project struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	Status         ProjectStatus `json:"status"`
	Deadline       *time.Time    `json:"deadline,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	LastModifiedAt time.Time     `json:"last_modified_at"`
}

// NewProject carries the caller-supplied fields for project creation.
// ID and timestamps are assigned by the store.
type NewProject struct {
	Title       string
	Description string
	Status      ProjectStatus
	Deadline    *time.Time
}

// ProjectUpdate is a partial update. Nil fields leave the record
// untouched; ClearDeadline removes the deadline.
type ProjectUpdate struct {
	Title         *string
	Description   *string
	Status        *ProjectStatus
	Deadline      *time.Time
	ClearDeadline bool
}
