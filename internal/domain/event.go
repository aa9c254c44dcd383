package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventAction names what happened in a broadcast event.
type EventAction string

const (
	EventTaskCreated      EventAction = "TASK_CREATED"
	EventTaskUpdated      EventAction = "TASK_UPDATED"
	EventTaskDeleted      EventAction = "TASK_DELETED"
	EventStatusChanged    EventAction = "STATUS_CHANGED"
	EventCommentAdded     EventAction = "COMMENT_ADDED"
	EventCommentUpdated   EventAction = "COMMENT_UPDATED"
	EventCommentDeleted   EventAction = "COMMENT_DELETED"
	EventActivityRecorded EventAction = "ACTIVITY_RECORDED"
)

func (a EventAction) String() string { return string(a) }

// Event is a notification fanned out to topic subscribers. Fields that do not
// apply to an action are left empty.
type Event struct {
	TaskID    uuid.UUID   `json:"taskId"`
	Action    EventAction `json:"action"`
	Username  string      `json:"username"`
	TaskTitle string      `json:"taskTitle,omitempty"`
	OldStatus TaskStatus  `json:"oldStatus,omitempty"`
	NewStatus TaskStatus  `json:"newStatus,omitempty"`

	CommentID *uuid.UUID `json:"commentId,omitempty"`
	Comment   string     `json:"comment,omitempty"`

	ActivityID   *uuid.UUID   `json:"activityId,omitempty"`
	ActivityKind ActivityKind `json:"activityKind,omitempty"`
	Description  string       `json:"description,omitempty"`
	OldValue     *string      `json:"oldValue,omitempty"`
	NewValue     *string      `json:"newValue,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// TopicTasks carries task-level events for every task.
const TopicTasks = "tasks"

// TaskCommentsTopic returns the topic for comment events on one task.
func TaskCommentsTopic(taskID uuid.UUID) string {
	return "tasks/" + taskID.String() + "/comments"
}

// TaskActivitiesTopic returns the topic for activity events on one task.
func TaskActivitiesTopic(taskID uuid.UUID) string {
	return "tasks/" + taskID.String() + "/activities"
}

// ValidTopic reports whether topic is one of the names events are published on.
func ValidTopic(topic string) bool {
	if topic == TopicTasks {
		return true
	}
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "tasks" {
		return false
	}
	if _, err := uuid.Parse(parts[1]); err != nil {
		return false
	}
	return parts[2] == "comments" || parts[2] == "activities"
}
