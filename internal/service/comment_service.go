package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/internal/repository"
)

// CommentService provides business logic for task comments.
type CommentService interface {
	ListByTask(ctx context.Context, taskID string) ([]*model.Comment, error)
	Add(ctx context.Context, taskID, text string) (*model.Comment, error)
}

type commentService struct {
	store repository.Store
}

// NewCommentService creates a CommentService.
func NewCommentService(store repository.Store) CommentService {
	return &commentService{store: store}
}

func (s *commentService) ListByTask(ctx context.Context, taskID string) ([]*model.Comment, error) {
	return s.store.ListComments(ctx, taskID)
}

func (s *commentService) Add(ctx context.Context, taskID, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalid)
	}
	return s.store.AddComment(ctx, taskID, text)
}
