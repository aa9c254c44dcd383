// Package comment manages the discussion thread attached to each task.
package comment

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/permission"
)

type commentRepo interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]domain.CommentView, error)
	Update(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type activityLog interface {
	LogCommentAdded(ctx context.Context, taskID, actorID uuid.UUID, body string) (*domain.ActivityRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(topic string, event domain.Event)
}

// Service provides comment operations.
type Service struct {
	comments commentRepo
	tasks    taskRepo
	users    userRepo
	audit    activityLog
	guard    *permission.Guard
	tx       txManager
	pub      publisher
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new comment service.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	tasks taskRepo,
	users userRepo,
	audit activityLog,
	tx txManager,
	pub publisher,
) *Service {
	return &Service{
		comments: comments,
		tasks:    tasks,
		users:    users,
		audit:    audit,
		guard:    permission.NewGuard(),
		tx:       tx,
		pub:      pub,
		log:      log.With("service", "comment"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// normalizeBody trims body and checks it is non-empty and within limits.
func normalizeBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", domain.NewValidationError("body", "required")
	}
	if utf8.RuneCountInString(body) > domain.MaxCommentLength {
		return "", domain.NewValidationError("body", "max 1000 characters")
	}
	return body, nil
}

func (s *Service) announce(pub publisher, task *domain.Task, action domain.EventAction, actor domain.Actor, commentID uuid.UUID, body string, at time.Time) {
	ev := domain.Event{
		TaskID:    task.ID,
		Action:    action,
		Username:  actor.Username,
		TaskTitle: task.Title,
		CommentID: &commentID,
		Comment:   body,
		Timestamp: at,
	}
	pub.Publish(domain.TaskCommentsTopic(task.ID), ev)
	pub.Publish(domain.TopicTasks, ev)
}
