package repository

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/taskdeck/backend/internal/model"
)

// Change summaries are the human-readable detail strings attached to
// UPDATED_PROJECT / UPDATED_TASK activity entries. Both store
// implementations build them the same way: compare the record before
// and after the merge and name the fields that differ.

func projectChangeSummary(old, updated *model.Project) string {
	var parts []string
	if old.Title != updated.Title {
		parts = append(parts, "title changed")
	}
	if old.Description != updated.Description {
		parts = append(parts, "description changed")
	}
	if old.Status != updated.Status {
		parts = append(parts, fmt.Sprintf("Status changed to '%s'", updated.Status))
	}
	if !timePtrEqual(old.Deadline, updated.Deadline) {
		parts = append(parts, "deadline changed")
	}
	if len(parts) == 0 {
		return "Updated project fields"
	}
	return strings.Join(parts, ", ")
}

func taskChangeSummary(old, updated *model.Task) string {
	var parts []string
	if old.Title != updated.Title {
		parts = append(parts, "title changed")
	}
	if old.Description != updated.Description {
		parts = append(parts, "description changed")
	}
	if old.Status != updated.Status {
		parts = append(parts, fmt.Sprintf("Status changed to '%s'", updated.Status))
	}
	if old.Priority != updated.Priority {
		parts = append(parts, fmt.Sprintf("Priority changed to '%s'", updated.Priority))
	}
	if old.AssigneeID != updated.AssigneeID {
		name := updated.AssigneeName
		if name == "" {
			name = "Unassigned"
		}
		parts = append(parts, fmt.Sprintf("Assignee changed to '%s'", name))
	}
	if !timePtrEqual(old.DueDate, updated.DueDate) {
		parts = append(parts, "due date changed")
	}
	if !slices.Equal(old.Photos, updated.Photos) {
		parts = append(parts, "photos changed")
	}
	if len(parts) == 0 {
		return "Updated task fields"
	}
	return strings.Join(parts, ", ")
}

// applyProjectUpdate merges a partial update into p. Timestamps are the
// caller's responsibility.
func applyProjectUpdate(p *model.Project, in model.ProjectUpdate) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.ClearDeadline {
		p.Deadline = nil
	} else if in.Deadline != nil {
		p.Deadline = in.Deadline
	}
}

// applyTaskUpdate merges a partial update into t. AssigneeName is left
// stale; callers must re-resolve it from the roster afterwards.
func applyTaskUpdate(t *model.Task, in model.TaskUpdate) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.AssigneeID != nil {
		t.AssigneeID = *in.AssigneeID
	}
	if in.ClearDueDate {
		t.DueDate = nil
	} else if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	if in.Photos != nil {
		t.Photos = append([]string{}, *in.Photos...)
	}
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
