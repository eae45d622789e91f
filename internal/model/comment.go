package model

import "time"

// Comment belongs to exactly one task and is removed when that task
// (or its project) is deleted. AuthorName is denormalized from the
// user roster for display.
type Comment struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
