package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

type userService interface {
	Current(ctx context.Context, actor domain.Actor) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// UserHandler serves the user directory.
type UserHandler struct {
	svc    userService
	actors actorResolver
	log    *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, actors actorResolver, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, actors: actors, log: logger.With("handler", "user")}
}

// Current handles GET /api/users/current.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.CurrentActor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	user, err := h.svc.Current(r.Context(), actor)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toUserResponse(user))
}

// List handles GET /api/users. Used to pick assignees.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := h.actors.CurrentActor(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	users, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	writeData(w, http.StatusOK, resp)
}
