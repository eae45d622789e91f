package view

import (
	"github.com/taskdeck/backend/internal/model"
)

// ProjectSortField names a sortable project column.
type ProjectSortField string

const (
	ProjectSortTitle     ProjectSortField = "title"
	ProjectSortStatus    ProjectSortField = "status"
	ProjectSortDeadline  ProjectSortField = "deadline"
	ProjectSortCreatedAt ProjectSortField = "createdAt"
)

// ProjectFilter restricts a project list. Zero-valued fields impose no
// restriction; set fields compose with AND.
type ProjectFilter struct {
	Status model.ProjectStatus
}

// Keep reports whether p passes the filter.
func (f ProjectFilter) Keep(p *model.Project) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}

// projectStatusRank orders statuses by lifecycle, not alphabetically.
func projectStatusRank(s model.ProjectStatus) int {
	for i, v := range model.ProjectStatuses {
		if v == s {
			return i
		}
	}
	return len(model.ProjectStatuses)
}

// ProjectComparator returns the comparator for a sort field, or nil
// for an unknown field.
func ProjectComparator(field ProjectSortField) Comparator[*model.Project] {
	switch field {
	case ProjectSortTitle:
		return func(a, b *model.Project, dir Direction) int {
			return compareStrings(a.Title, b.Title, dir)
		}
	case ProjectSortStatus:
		return func(a, b *model.Project, dir Direction) int {
			return dir.apply(projectStatusRank(a.Status) - projectStatusRank(b.Status))
		}
	case ProjectSortDeadline:
		return func(a, b *model.Project, dir Direction) int {
			return compareTimePtrs(a.Deadline, b.Deadline, dir)
		}
	case ProjectSortCreatedAt:
		return func(a, b *model.Project, dir Direction) int {
			return compareTimes(a.CreatedAt, b.CreatedAt, dir)
		}
	}
	return nil
}

// Projects derives a filtered, sorted project view.
func Projects(items []*model.Project, filter ProjectFilter, sort Sort[ProjectSortField]) []*model.Project {
	return Derive(items, filter.Keep, ProjectComparator(sort.Field), sort.Dir)
}
