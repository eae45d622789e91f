package model

import "time"

// ActivityAction identifies the kind of mutation an activity entry records.
type ActivityAction string

const (
	ActionCreatedProject ActivityAction = "CREATED_PROJECT"
	ActionUpdatedProject ActivityAction = "UPDATED_PROJECT"
	ActionDeletedProject ActivityAction = "DELETED_PROJECT"
	ActionCreatedTask    ActivityAction = "CREATED_TASK"
	ActionUpdatedTask    ActivityAction = "UPDATED_TASK"
	ActionDeletedTask    ActivityAction = "DELETED_TASK"
	ActionAddedComment   ActivityAction = "ADDED_COMMENT"
)

// TargetType identifies the entity an activity entry is about.
type TargetType string

const (
	TargetProject TargetType = "Project"
	TargetTask    TargetType = "Task"
	TargetComment TargetType = "Comment"
)

// ActivityEntry is one audit record describing a single mutation.
// The feed is append-only and ordered newest first. ActorName and
// TargetTitle are denormalized for display; ProjectID scopes the entry
// to a project so per-project feeds can filter on it.
type ActivityEntry struct {
	ID          string         `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	ActorID     string         `json:"actor_id"`
	ActorName   string         `json:"actor_name"`
	Action      ActivityAction `json:"action"`
	TargetType  TargetType     `json:"target_type"`
	TargetID    string         `json:"target_id"`
	TargetTitle string         `json:"target_title,omitempty"`
	Details     string         `json:"details,omitempty"`
	ProjectID   string         `json:"project_id,omitempty"`
}
