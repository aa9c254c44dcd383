package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/broadcast"
	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/permission"
)

// taskChanges describes which parts of a task an update touched.
type taskChanges struct {
	status   bool
	priority bool
	assignee bool
	other    bool

	oldAssignee *domain.User
	newAssignee *domain.User
}

func (c taskChanges) any() bool {
	return c.status || c.priority || c.assignee || c.other
}

// UpdateTask applies a partial update. Only the creator or the current
// assignee may update. A rejected status transition leaves the task untouched.
// Every accepted update refreshes updatedAt and is broadcast. Activities are
// recorded only when a field actually changed.
func (s *Service) UpdateTask(ctx context.Context, actor domain.Actor, input UpdateTaskInput) (*domain.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, outbox := broadcast.WithOutbox(ctx, s.pub)

	var result *domain.Task
	var changes taskChanges
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.tasks.GetByID(txCtx, input.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if err := s.guard.CheckTask(actor, old, permission.UpdateTask); err != nil {
			return err
		}

		next := *old
		changes, err = s.applyUpdate(txCtx, old, &next, input)
		if err != nil {
			return err
		}
		next.UpdatedAt = s.now()
		result, err = s.tasks.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		if changes.any() {
			if err := s.auditUpdate(txCtx, actor, old, result, changes); err != nil {
				return err
			}
		}

		ev := domain.Event{
			TaskID:    result.ID,
			Action:    domain.EventTaskUpdated,
			Username:  actor.Username,
			TaskTitle: result.Title,
			Timestamp: result.UpdatedAt,
		}
		if changes.status {
			ev.Action = domain.EventStatusChanged
			ev.OldStatus = old.Status
			ev.NewStatus = result.Status
		}
		outbox.Publish(domain.TopicTasks, ev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	outbox.Flush()

	s.log.InfoContext(ctx, "task updated",
		slog.String("task_id", result.ID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.Bool("status_changed", changes.status),
		slog.Bool("fields_changed", changes.any()),
	)

	return result, nil
}

// applyUpdate copies the requested fields onto next and reports what changed.
// Nothing is written here.
func (s *Service) applyUpdate(ctx context.Context, old, next *domain.Task, input UpdateTaskInput) (taskChanges, error) {
	var c taskChanges

	if input.Status != nil {
		if err := domain.CheckTransition(old.Status, *input.Status); err != nil {
			return c, err
		}
		if *input.Status != old.Status {
			next.Status = *input.Status
			c.status = true
		}
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title != old.Title {
			next.Title = title
			c.other = true
		}
	}

	if input.Description != nil {
		desc := trimOrNil(input.Description)
		if !equalPtr(desc, old.Description) {
			next.Description = desc
			c.other = true
		}
	}

	if input.Priority != nil && *input.Priority != old.Priority {
		next.Priority = *input.Priority
		c.priority = true
	}

	if input.AssigneeID != nil {
		next.AssigneeID = nil
		if *input.AssigneeID != uuid.Nil {
			assignee, err := s.users.GetByID(ctx, *input.AssigneeID)
			if err != nil {
				return c, fmt.Errorf("get assignee: %w", err)
			}
			next.AssigneeID = &assignee.ID
			c.newAssignee = assignee
		}

		if !equalPtr(old.AssigneeID, next.AssigneeID) {
			c.assignee = true
			if old.AssigneeID != nil {
				previous, err := s.users.GetByID(ctx, *old.AssigneeID)
				if err != nil {
					return c, fmt.Errorf("get previous assignee: %w", err)
				}
				c.oldAssignee = previous
			}
		}
	}

	return c, nil
}

// auditUpdate records activities in a fixed order: status, priority,
// unassignment, assignment, then the generic update record.
func (s *Service) auditUpdate(ctx context.Context, actor domain.Actor, old, updated *domain.Task, c taskChanges) error {
	if c.status {
		if _, err := s.audit.LogStatusChanged(ctx, updated.ID, actor.ID, old.Status, updated.Status); err != nil {
			return fmt.Errorf("audit status change: %w", err)
		}
	}
	if c.priority {
		if _, err := s.audit.LogPriorityChanged(ctx, updated.ID, actor.ID, old.Priority, updated.Priority); err != nil {
			return fmt.Errorf("audit priority change: %w", err)
		}
	}
	if c.assignee {
		if c.oldAssignee != nil {
			if _, err := s.audit.LogUnassigned(ctx, updated.ID, actor.ID, c.oldAssignee.Username); err != nil {
				return fmt.Errorf("audit unassign: %w", err)
			}
		}
		if c.newAssignee != nil {
			if _, err := s.audit.LogAssigned(ctx, updated.ID, actor.ID, c.newAssignee.Username); err != nil {
				return fmt.Errorf("audit assign: %w", err)
			}
		}
	}
	if _, err := s.audit.LogUpdated(ctx, updated.ID, actor.ID); err != nil {
		return fmt.Errorf("audit update: %w", err)
	}
	return nil
}
