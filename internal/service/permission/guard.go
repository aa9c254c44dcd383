// Package permission decides whether an actor may mutate a task or comment.
package permission

import (
	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// Capability is a guarded action.
type Capability string

const (
	UpdateTask    Capability = "UPDATE_TASK"
	DeleteTask    Capability = "DELETE_TASK"
	UpdateComment Capability = "UPDATE_COMMENT"
	DeleteComment Capability = "DELETE_COMMENT"
)

// Guard evaluates ownership rules. It holds no state.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

// CanUpdateTask allows the creator and the current assignee.
func (g *Guard) CanUpdateTask(actor domain.Actor, task *domain.Task) bool {
	return task.IsCreator(actor.ID) || task.IsAssignee(actor.ID)
}

// CanDeleteTask allows any authenticated actor.
func (g *Guard) CanDeleteTask(actor domain.Actor, _ *domain.Task) bool {
	return actor.ID != uuid.Nil
}

// CanModifyComment allows the author and admins.
func (g *Guard) CanModifyComment(actor domain.Actor, comment *domain.Comment) bool {
	return comment.AuthorID == actor.ID || actor.IsAdmin()
}

// CheckTask returns domain.ErrForbidden when actor lacks capability on task.
func (g *Guard) CheckTask(actor domain.Actor, task *domain.Task, capability Capability) error {
	var ok bool
	switch capability {
	case UpdateTask:
		ok = g.CanUpdateTask(actor, task)
	case DeleteTask:
		ok = g.CanDeleteTask(actor, task)
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// CheckComment returns domain.ErrForbidden when actor lacks capability on comment.
func (g *Guard) CheckComment(actor domain.Actor, comment *domain.Comment, capability Capability) error {
	var ok bool
	switch capability {
	case UpdateComment, DeleteComment:
		ok = g.CanModifyComment(actor, comment)
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}
