package activity

import (
	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// RecordInput holds the parameters for recording an activity.
type RecordInput struct {
	TaskID      uuid.UUID
	ActorID     uuid.UUID
	Kind        domain.ActivityKind
	Description string
	OldValue    *string
	NewValue    *string
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value"})
	}
	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
