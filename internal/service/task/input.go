package task

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    domain.Priority
	Status      domain.TaskStatus // empty = TODO
	AssigneeID  *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)

	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of LOW, MEDIUM, HIGH"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of TODO, IN_PROGRESS, DONE"})
	}
	if i.AssigneeID != nil && *i.AssigneeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assignee_id", Message: "invalid id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTaskInput holds the parameters for a partial task update.
type UpdateTaskInput struct {
	TaskID      uuid.UUID
	Title       *string
	Description *string // nil = don't change; ptr("") = clear
	Status      *domain.TaskStatus
	Priority    *domain.Priority
	AssigneeID  *uuid.UUID // nil = don't change; ptr(uuid.Nil) = unassign
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	errs = validateDescription(errs, i.Description)

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of TODO, IN_PROGRESS, DONE"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of LOW, MEDIUM, HIGH"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FilterInput narrows the actor's own tasks. Empty fields are ignored.
type FilterInput struct {
	Status     string
	AssigneeID *uuid.UUID
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > domain.MaxTaskTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, desc *string) []domain.FieldError {
	if desc != nil && utf8.RuneCountInString(strings.TrimSpace(*desc)) > domain.MaxTaskDescriptionLength {
		return append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}
	return errs
}
