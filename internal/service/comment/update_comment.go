package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/broadcast"
	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/permission"
)

// UpdateComment replaces a comment's body. Only the author or an admin may edit.
func (s *Service) UpdateComment(ctx context.Context, actor domain.Actor, commentID uuid.UUID, body string) (*domain.CommentView, error) {
	body, err := normalizeBody(body)
	if err != nil {
		return nil, err
	}

	ctx, outbox := broadcast.WithOutbox(ctx, s.pub)

	var view *domain.CommentView
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByID(txCtx, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		if err := s.guard.CheckComment(actor, c, permission.UpdateComment); err != nil {
			return err
		}

		task, err := s.tasks.GetByID(txCtx, c.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		author, err := s.users.GetByID(txCtx, c.AuthorID)
		if err != nil {
			return fmt.Errorf("get author: %w", err)
		}

		c.Body = body
		c.UpdatedAt = s.now()
		updated, err := s.comments.Update(txCtx, c)
		if err != nil {
			return fmt.Errorf("update comment: %w", err)
		}

		s.announce(outbox, task, domain.EventCommentUpdated, actor, updated.ID, updated.Body, updated.UpdatedAt)
		view = &domain.CommentView{Comment: *updated, AuthorUsername: author.Username}
		return nil
	})
	if err != nil {
		return nil, err
	}
	outbox.Flush()

	s.log.InfoContext(ctx, "comment updated",
		slog.String("comment_id", commentID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return view, nil
}
