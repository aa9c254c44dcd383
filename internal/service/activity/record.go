package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/broadcast"
	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// Record persists an activity and announces it on the task's activity topic
// and on the global tasks topic. Inside a transaction the announcement is
// queued on the caller's outbox.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.ActivityRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	actor, err := s.users.GetByID(ctx, input.ActorID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}

	record, err := s.activities.Create(ctx, &domain.ActivityRecord{
		ID:          uuid.Must(uuid.NewV7()),
		TaskID:      task.ID,
		ActorID:     actor.ID,
		Kind:        input.Kind,
		Description: input.Description,
		OldValue:    input.OldValue,
		NewValue:    input.NewValue,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	ev := domain.Event{
		TaskID:       task.ID,
		Action:       domain.EventActivityRecorded,
		Username:     actor.Username,
		TaskTitle:    task.Title,
		ActivityID:   &record.ID,
		ActivityKind: record.Kind,
		Description:  record.Description,
		OldValue:     record.OldValue,
		NewValue:     record.NewValue,
		Timestamp:    record.CreatedAt,
	}
	pub := broadcast.FromCtx(ctx, s.pub)
	pub.Publish(domain.TaskActivitiesTopic(task.ID), ev)
	pub.Publish(domain.TopicTasks, ev)

	s.log.DebugContext(ctx, "activity recorded",
		slog.String("task_id", task.ID.String()),
		slog.String("kind", record.Kind.String()),
	)

	return record, nil
}

// ---------------------------------------------------------------------------
// Convenience recorders, one per activity kind
// ---------------------------------------------------------------------------

func (s *Service) LogCreated(ctx context.Context, taskID, actorID uuid.UUID) (*domain.ActivityRecord, error) {
	return s.Record(ctx, RecordInput{
		TaskID: taskID, ActorID: actorID,
		Kind: domain.ActivityCreated, Description: domain.DescCreated,
	})
}

func (s *Service) LogUpdated(ctx context.Context, taskID, actorID uuid.UUID) (*domain.ActivityRecord, error) {
	return s.Record(ctx, RecordInput{
		TaskID: taskID, ActorID: actorID,
		Kind: domain.ActivityUpdated, Description: domain.DescUpdated,
	})
}

func (s *Service) LogStatusChanged(ctx context.Context, taskID, actorID uuid.UUID, from, to domain.TaskStatus) (*domain.ActivityRecord, error) {
	return s.Record(ctx, RecordInput{
		TaskID: taskID, ActorID: actorID,
		Kind:        domain.ActivityStatusChanged,
		Description: domain.DescribeStatusChanged(from, to),
		OldValue:    ptr(from.String()),
		NewValue:    ptr(to.String()),
	})
}

func (s *Service) LogPriorityChanged(ctx context.Context, taskID, actorID uuid.UUID, from, to domain.Priority) (*domain.ActivityRecord, error) {
	return s.Record(ctx, RecordInput{
		TaskID: taskID, ActorID: actorID,
		Kind:        domain.ActivityPriorityChanged,
		Description: domain.DescribePriorityChanged(from, to),
		OldValue:    ptr(from.String()),
		NewValue:    ptr(to.String()),
	})
}

// LogAssigned records that the task was handed to assignee.
func (s *Service) LogAssigned(ctx context.Context, taskID, actorID uuid.UUID, assignee string) (*domain.ActivityRecord, error) {
	return s.Record(ctx, RecordInput{
		TaskID: taskID, ActorID: actorID,
		Kind:        domain.ActivityAssigned,
		Description: domain.DescribeAssigned(assignee),
		NewValue:    ptr(assignee),
	})
}

// LogUnassigned records that previous no longer holds the task.
func (s *Service) LogUnassigned(ctx context.Context, taskID, actorID uuid.UUID, previous string) (*domain.ActivityRecord, error) {
	return s.Record(ctx, RecordInput{
		TaskID: taskID, ActorID: actorID,
		Kind:        domain.ActivityUnassigned,
		Description: domain.DescribeUnassigned(previous),
		OldValue:    ptr(previous),
	})
}

func (s *Service) LogCommentAdded(ctx context.Context, taskID, actorID uuid.UUID, body string) (*domain.ActivityRecord, error) {
	return s.Record(ctx, RecordInput{
		TaskID: taskID, ActorID: actorID,
		Kind:        domain.ActivityCommentAdded,
		Description: domain.DescCommentAdded,
		NewValue:    ptr(body),
	})
}

func (s *Service) LogDeleted(ctx context.Context, taskID, actorID uuid.UUID) (*domain.ActivityRecord, error) {
	return s.Record(ctx, RecordInput{
		TaskID: taskID, ActorID: actorID,
		Kind: domain.ActivityDeleted, Description: domain.DescDeleted,
	})
}

func ptr(s string) *string {
	return &s
}
