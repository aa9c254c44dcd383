// Package task implements the task lifecycle: creation, partial updates
// gated by ownership and the status state machine, deletion and listings.
package task

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/permission"
)

type taskRepo interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
}

// cascadeRepo removes records a task owns.
type cascadeRepo interface {
	DeleteByTaskID(ctx context.Context, taskID uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type activityLog interface {
	LogCreated(ctx context.Context, taskID, actorID uuid.UUID) (*domain.ActivityRecord, error)
	LogUpdated(ctx context.Context, taskID, actorID uuid.UUID) (*domain.ActivityRecord, error)
	LogStatusChanged(ctx context.Context, taskID, actorID uuid.UUID, from, to domain.TaskStatus) (*domain.ActivityRecord, error)
	LogPriorityChanged(ctx context.Context, taskID, actorID uuid.UUID, from, to domain.Priority) (*domain.ActivityRecord, error)
	LogAssigned(ctx context.Context, taskID, actorID uuid.UUID, assignee string) (*domain.ActivityRecord, error)
	LogUnassigned(ctx context.Context, taskID, actorID uuid.UUID, previous string) (*domain.ActivityRecord, error)
	LogDeleted(ctx context.Context, taskID, actorID uuid.UUID) (*domain.ActivityRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(topic string, event domain.Event)
}

// Service provides task lifecycle operations.
type Service struct {
	tasks      taskRepo
	comments   cascadeRepo
	activities cascadeRepo
	users      userRepo
	audit      activityLog
	guard      *permission.Guard
	tx         txManager
	pub        publisher
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	comments cascadeRepo,
	activities cascadeRepo,
	users userRepo,
	audit activityLog,
	tx txManager,
	pub publisher,
) *Service {
	return &Service{
		tasks:      tasks,
		comments:   comments,
		activities: activities,
		users:      users,
		audit:      audit,
		guard:      permission.NewGuard(),
		tx:         tx,
		pub:        pub,
		log:        log.With("service", "task"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
