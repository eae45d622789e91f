package service

import (
	"context"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/repository"
)

// ActivityService exposes the activity feed.
type ActivityService interface {
	List(ctx context.Context, projectID string, limit int) ([]*model.ActivityEntry, error)
}

type activityService struct {
	store repository.Store
}

// NewActivityService creates an ActivityService.
func NewActivityService(store repository.Store) ActivityService {
	return &activityService{store: store}
}

func (s *activityService) List(ctx context.Context, projectID string, limit int) ([]*model.ActivityEntry, error) {
	return s.store.ListActivity(ctx, projectID, limit)
}
