// Package activity records and lists the audit trail of task changes.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

type activityRepo interface {
	Create(ctx context.Context, record *domain.ActivityRecord) (*domain.ActivityRecord, error)
	ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]domain.ActivityView, error)
}

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type publisher interface {
	Publish(topic string, event domain.Event)
}

// Service is the activity audit log.
type Service struct {
	activities activityRepo
	tasks      taskRepo
	users      userRepo
	pub        publisher
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new activity service.
func NewService(
	log *slog.Logger,
	activities activityRepo,
	tasks taskRepo,
	users userRepo,
	pub publisher,
) *Service {
	return &Service{
		activities: activities,
		tasks:      tasks,
		users:      users,
		pub:        pub,
		log:        log.With("service", "activity"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}
