package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// ListComments returns the task's comments, oldest first.
func (s *Service) ListComments(ctx context.Context, taskID uuid.UUID) ([]domain.CommentView, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	views, err := s.comments.ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return views, nil
}
