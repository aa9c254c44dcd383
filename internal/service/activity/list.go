package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// List returns the task's activity trail, newest first.
func (s *Service) List(ctx context.Context, taskID uuid.UUID) ([]domain.ActivityView, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	views, err := s.activities.ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return views, nil
}
