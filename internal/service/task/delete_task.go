package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/permission"
)

// DeleteTask removes a task together with its comments and activity trail.
// The DELETED activity and the TASK_DELETED event go out before the rows are
// removed, so subscribers hear about the deletion while the task still exists.
func (s *Service) DeleteTask(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if err := s.guard.CheckTask(actor, task, permission.DeleteTask); err != nil {
		return err
	}

	if _, err := s.audit.LogDeleted(ctx, task.ID, actor.ID); err != nil {
		return fmt.Errorf("audit delete task: %w", err)
	}

	s.pub.Publish(domain.TopicTasks, domain.Event{
		TaskID:    task.ID,
		Action:    domain.EventTaskDeleted,
		Username:  actor.Username,
		TaskTitle: task.Title,
		OldStatus: task.Status,
		Timestamp: s.now(),
	})

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.comments.DeleteByTaskID(txCtx, task.ID); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := s.activities.DeleteByTaskID(txCtx, task.ID); err != nil {
			return fmt.Errorf("delete activities: %w", err)
		}
		if err := s.tasks.Delete(txCtx, task.ID); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("task_id", task.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}
