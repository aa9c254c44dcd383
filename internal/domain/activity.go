package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is an immutable audit entry for a state change on a task.
type ActivityRecord struct {
	ID          uuid.UUID
	TaskID      uuid.UUID
	ActorID     uuid.UUID
	Kind        ActivityKind
	Description string
	OldValue    *string
	NewValue    *string
	CreatedAt   time.Time
}

// ActivityView is an activity record together with its actor's username.
type ActivityView struct {
	ActivityRecord
	ActorUsername string
}

// Fixed descriptions for activity kinds that carry no values.
const (
	DescCreated      = "Task was created"
	DescUpdated      = "Task was updated"
	DescCommentAdded = "Comment added to task"
	DescDeleted      = "Task was deleted"
)

func DescribeStatusChanged(from, to TaskStatus) string {
	return fmt.Sprintf("Status changed from %s to %s", from, to)
}

func DescribePriorityChanged(from, to Priority) string {
	return fmt.Sprintf("Priority changed from %s to %s", from, to)
}

func DescribeAssigned(username string) string {
	return fmt.Sprintf("Task assigned to %s", username)
}

func DescribeUnassigned(username string) string {
	return fmt.Sprintf("Task unassigned from %s", username)
}
