package task

import (
	"context"
	"fmt"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// ListMine returns tasks the actor created or is assigned to, newest first.
func (s *Service) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx, domain.TaskFilter{InvolvedUserID: &actor.ID})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// ListAll returns every task, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx, domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Filter returns tasks the actor created, narrowed by status and assignee.
func (s *Service) Filter(ctx context.Context, actor domain.Actor, input FilterInput) ([]domain.Task, error) {
	filter := domain.TaskFilter{CreatorID: &actor.ID}

	if input.Status != "" {
		status, ok := domain.ParseTaskStatus(input.Status)
		if !ok {
			return nil, domain.NewValidationError("status", "must be one of TODO, IN_PROGRESS, DONE")
		}
		filter.Status = &status
	}

	if input.AssigneeID != nil {
		assignee, err := s.users.GetByID(ctx, *input.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("get assignee: %w", err)
		}
		filter.AssigneeID = &assignee.ID
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("filter tasks: %w", err)
	}
	return tasks, nil
}

// ListMineByPriority returns the actor's tasks with the given priority.
func (s *Service) ListMineByPriority(ctx context.Context, actor domain.Actor, priority string) ([]domain.Task, error) {
	p, ok := domain.ParsePriority(priority)
	if !ok {
		return nil, domain.NewValidationError("priority", "must be one of LOW, MEDIUM, HIGH")
	}

	tasks, err := s.tasks.List(ctx, domain.TaskFilter{InvolvedUserID: &actor.ID, Priority: &p})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}
