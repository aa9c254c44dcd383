package domain

import "strings"

// TaskStatus is the position of a task in its workflow.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// ParseTaskStatus parses a status literal case-insensitively.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	status := TaskStatus(strings.ToUpper(strings.TrimSpace(s)))
	return status, status.IsValid()
}

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority parses a priority literal case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// ActivityKind identifies what an activity record describes.
type ActivityKind string

const (
	ActivityCreated         ActivityKind = "CREATED"
	ActivityUpdated         ActivityKind = "UPDATED"
	ActivityStatusChanged   ActivityKind = "STATUS_CHANGED"
	ActivityAssigned        ActivityKind = "ASSIGNED"
	ActivityUnassigned      ActivityKind = "UNASSIGNED"
	ActivityCommentAdded    ActivityKind = "COMMENT_ADDED"
	ActivityDeleted         ActivityKind = "DELETED"
	ActivityPriorityChanged ActivityKind = "PRIORITY_CHANGED"
)

func (k ActivityKind) String() string { return string(k) }

func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivityCreated, ActivityUpdated, ActivityStatusChanged, ActivityAssigned,
		ActivityUnassigned, ActivityCommentAdded, ActivityDeleted, ActivityPriorityChanged:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
