package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Field limits for tasks.
const (
	MaxTaskTitleLength       = 200
	MaxTaskDescriptionLength = 500
)

// Task is the tracked unit of work.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Status      TaskStatus
	Priority    Priority
	CreatorID   uuid.UUID
	AssigneeID  *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCreator reports whether userID created the task.
func (t *Task) IsCreator(userID uuid.UUID) bool {
	return t.CreatorID == userID
}

// IsAssignee reports whether userID is the current assignee.
func (t *Task) IsAssignee(userID uuid.UUID) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// TaskTransitions lists, for every status, the statuses a task may move to.
// A task may always stay where it is. TODO to DONE is only reachable via
// IN_PROGRESS.
var TaskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusTodo:       {TaskStatusTodo, TaskStatusInProgress},
	TaskStatusInProgress: {TaskStatusInProgress, TaskStatusTodo, TaskStatusDone},
	TaskStatusDone:       {TaskStatusDone, TaskStatusInProgress},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	return slices.Contains(TaskTransitions[s], next)
}

// CheckTransition returns a *TransitionError when from -> to is not allowed.
func CheckTransition(from, to TaskStatus) error {
	if !to.IsValid() || !from.CanTransitionTo(to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// TaskFilter narrows task listings. Nil fields are not applied.
type TaskFilter struct {
	CreatorID  *uuid.UUID
	AssigneeID *uuid.UUID
	// InvolvedUserID matches tasks the user either created or is assigned to.
	InvolvedUserID *uuid.UUID
	Status         *TaskStatus
	Priority       *Priority
}
