package view

import (
	"github.com/taskdeck/backend/internal/model"
)

// TaskSortField names a sortable task column.
type TaskSortField string

const (
	TaskSortTitle     TaskSortField = "title"
	TaskSortStatus    TaskSortField = "status"
	TaskSortPriority  TaskSortField = "priority"
	TaskSortAssignee  TaskSortField = "assignee"
	TaskSortDueDate   TaskSortField = "dueDate"
	TaskSortCreatedAt TaskSortField = "createdAt"
)

// Unassigned is the sentinel assignee filter value matching tasks with
// no assignee, rather than an assignee whose id equals the sentinel.
const Unassigned = "unassigned"

// TaskFilter restricts a task list. Zero-valued fields impose no
// restriction; set fields compose with AND.
type TaskFilter struct {
	Status     model.TaskStatus
	Priority   model.TaskPriority
	AssigneeID string
}

// Keep reports whether t passes the filter.
func (f TaskFilter) Keep(t *model.Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.AssigneeID != "" {
		if f.AssigneeID == Unassigned {
			if t.AssigneeID != "" {
				return false
			}
		} else if t.AssigneeID != f.AssigneeID {
			return false
		}
	}
	return true
}

func taskStatusRank(s model.TaskStatus) int {
	for i, v := range model.TaskStatuses {
		if v == s {
			return i
		}
	}
	return len(model.TaskStatuses)
}

// TaskComparator returns the comparator for a sort field, or nil for
// an unknown field.
func TaskComparator(field TaskSortField) Comparator[*model.Task] {
	switch field {
	case TaskSortTitle:
		return func(a, b *model.Task, dir Direction) int {
			return compareStrings(a.Title, b.Title, dir)
		}
	case TaskSortStatus:
		return func(a, b *model.Task, dir Direction) int {
			return dir.apply(taskStatusRank(a.Status) - taskStatusRank(b.Status))
		}
	case TaskSortPriority:
		// Rank order, not lexical: Low < Medium < High.
		return func(a, b *model.Task, dir Direction) int {
			return dir.apply(a.Priority.Rank() - b.Priority.Rank())
		}
	case TaskSortAssignee:
		return func(a, b *model.Task, dir Direction) int {
			return compareStrings(a.AssigneeName, b.AssigneeName, dir)
		}
	case TaskSortDueDate:
		return func(a, b *model.Task, dir Direction) int {
			return compareTimePtrs(a.DueDate, b.DueDate, dir)
		}
	case TaskSortCreatedAt:
		return func(a, b *model.Task, dir Direction) int {
			return compareTimes(a.CreatedAt, b.CreatedAt, dir)
		}
	}
	return nil
}

// Tasks derives a filtered, sorted task view.
func Tasks(items []*model.Task, filter TaskFilter, sort Sort[TaskSortField]) []*model.Task {
	return Derive(items, filter.Keep, TaskComparator(sort.Field), sort.Dir)
}
