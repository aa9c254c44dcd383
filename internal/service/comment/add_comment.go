package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/broadcast"
	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// AddComment posts a comment on a task as actor.
func (s *Service) AddComment(ctx context.Context, actor domain.Actor, taskID uuid.UUID, body string) (*domain.CommentView, error) {
	body, err := normalizeBody(body)
	if err != nil {
		return nil, err
	}

	ctx, outbox := broadcast.WithOutbox(ctx, s.pub)

	var created *domain.Comment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		task, err := s.tasks.GetByID(txCtx, taskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}

		now := s.now()
		created, err = s.comments.Create(txCtx, &domain.Comment{
			ID:        uuid.Must(uuid.NewV7()),
			TaskID:    task.ID,
			AuthorID:  actor.ID,
			Body:      body,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		if _, err := s.audit.LogCommentAdded(txCtx, task.ID, actor.ID, created.Body); err != nil {
			return fmt.Errorf("audit comment: %w", err)
		}

		s.announce(outbox, task, domain.EventCommentAdded, actor, created.ID, created.Body, created.CreatedAt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	outbox.Flush()

	s.log.InfoContext(ctx, "comment added",
		slog.String("task_id", taskID.String()),
		slog.String("comment_id", created.ID.String()),
	)

	return &domain.CommentView{Comment: *created, AuthorUsername: actor.Username}, nil
}
