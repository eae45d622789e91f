package service

import (
	"context"
	"math"
	"time"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/repository"
)

// AnalyticsService computes the dashboard summary.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*model.DashboardSummary, error)
}

type analyticsService struct {
	store repository.Store
	now   func() time.Time
}

// NewAnalyticsService creates an AnalyticsService.
func NewAnalyticsService(store repository.Store) AnalyticsService {
	return &analyticsService{store: store, now: time.Now}
}

func (s *analyticsService) Dashboard(ctx context.Context) (*model.DashboardSummary, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.store.ListAllTasks(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(projects, tasks, s.now()), nil
}

// Summarize is a stateless aggregation over a snapshot of projects and
// tasks. Both status maps are zero-filled so every enum value appears
// even when nothing carries it.
func Summarize(projects []*model.Project, tasks []*model.Task, now time.Time) *model.DashboardSummary {
	sum := &model.DashboardSummary{
		TotalProjects:    len(projects),
		ProjectsByStatus: make(map[model.ProjectStatus]int, len(model.ProjectStatuses)),
		TotalTasks:       len(tasks),
		TasksByStatus:    make(map[model.TaskStatus]int, len(model.TaskStatuses)),
	}
	for _, st := range model.ProjectStatuses {
		sum.ProjectsByStatus[st] = 0
	}
	for _, st := range model.TaskStatuses {
		sum.TasksByStatus[st] = 0
	}

	for _, p := range projects {
		sum.ProjectsByStatus[p.Status]++
	}

	done := 0
	for _, t := range tasks {
		sum.TasksByStatus[t.Status]++
		if t.Status == model.TaskDone {
			done++
		} else if t.DueDate != nil && t.DueDate.Before(now) {
			sum.OverdueTasks++
		}
	}

	if len(tasks) > 0 {
		sum.TaskCompletionRate = int(math.Round(float64(done) / float64(len(tasks)) * 100))
	}
	return sum
}
