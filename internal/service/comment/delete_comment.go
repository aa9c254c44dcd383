package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/permission"
)

// DeleteComment removes a comment. Only the author or an admin may delete.
// The COMMENT_DELETED event, carrying a placeholder body, is published
// before the row is removed.
func (s *Service) DeleteComment(ctx context.Context, actor domain.Actor, commentID uuid.UUID) error {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if err := s.guard.CheckComment(actor, c, permission.DeleteComment); err != nil {
		return err
	}

	task, err := s.tasks.GetByID(ctx, c.TaskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}

	s.announce(s.pub, task, domain.EventCommentDeleted, actor, c.ID, domain.DeletedCommentBody, s.now())

	if err := s.comments.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("comment_id", commentID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}
