package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/broadcast"
	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// CreateTask creates a task owned by actor.
func (s *Service) CreateTask(ctx context.Context, actor domain.Actor, input CreateTaskInput) (*domain.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	now := s.now()
	task := &domain.Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		Status:      status,
		Priority:    input.Priority,
		CreatorID:   actor.ID,
		AssigneeID:  input.AssigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, outbox := broadcast.WithOutbox(ctx, s.pub)

	var created *domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var assignee *domain.User
		if input.AssigneeID != nil {
			var err error
			assignee, err = s.users.GetByID(txCtx, *input.AssigneeID)
			if err != nil {
				return fmt.Errorf("get assignee: %w", err)
			}
		}

		var err error
		created, err = s.tasks.Create(txCtx, task)
		if err != nil {
			return fmt.Errorf("create task: %w", err)
		}

		if _, err := s.audit.LogCreated(txCtx, created.ID, actor.ID); err != nil {
			return fmt.Errorf("audit create task: %w", err)
		}
		if assignee != nil {
			if _, err := s.audit.LogAssigned(txCtx, created.ID, actor.ID, assignee.Username); err != nil {
				return fmt.Errorf("audit assign task: %w", err)
			}
		}

		outbox.Publish(domain.TopicTasks, domain.Event{
			TaskID:    created.ID,
			Action:    domain.EventTaskCreated,
			Username:  actor.Username,
			TaskTitle: created.Title,
			NewStatus: created.Status,
			Timestamp: created.CreatedAt,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	outbox.Flush()

	s.log.InfoContext(ctx, "task created",
		slog.String("task_id", created.ID.String()),
		slog.String("creator_id", actor.ID.String()),
	)

	return created, nil
}
