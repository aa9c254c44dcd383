package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

type userRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type taskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Creator     userRef   `json:"creator"`
	Assignee    *userRef  `json:"assignee"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// toTaskResponse renders t with usernames looked up in names.
func toTaskResponse(t *domain.Task, names map[uuid.UUID]string) taskResponse {
	resp := taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
		Priority:    t.Priority.String(),
		Creator:     userRef{ID: t.CreatorID, Username: names[t.CreatorID]},
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.AssigneeID != nil {
		resp.Assignee = &userRef{ID: *t.AssigneeID, Username: names[*t.AssigneeID]}
	}
	return resp
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"taskId"`
	Author    userRef   `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCommentResponse(c *domain.CommentView) commentResponse {
	return commentResponse{
		ID:        c.ID,
		TaskID:    c.TaskID,
		Author:    userRef{ID: c.AuthorID, Username: c.AuthorUsername},
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type activityResponse struct {
	ID          uuid.UUID `json:"id"`
	TaskID      uuid.UUID `json:"taskId"`
	Actor       userRef   `json:"actor"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	OldValue    *string   `json:"oldValue"`
	NewValue    *string   `json:"newValue"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toActivityResponse(a *domain.ActivityView) activityResponse {
	return activityResponse{
		ID:          a.ID,
		TaskID:      a.TaskID,
		Actor:       userRef{ID: a.ActorID, Username: a.ActorUsername},
		Kind:        a.Kind.String(),
		Description: a.Description,
		OldValue:    a.OldValue,
		NewValue:    a.NewValue,
		CreatedAt:   a.CreatedAt,
	}
}
