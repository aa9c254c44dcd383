package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

type activityService interface {
	List(ctx context.Context, taskID uuid.UUID) ([]domain.ActivityView, error)
}

// ActivityHandler serves the task audit trail.
type ActivityHandler struct {
	svc    activityService
	actors actorResolver
	log    *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, actors actorResolver, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, actors: actors, log: logger.With("handler", "activity")}
}

// List handles GET /api/tasks/{id}/activities, newest first.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := h.actors.CurrentActor(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	taskID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	activities, err := h.svc.List(r.Context(), taskID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]activityResponse, 0, len(activities))
	for i := range activities {
		resp = append(resp, toActivityResponse(&activities[i]))
	}
	writeData(w, http.StatusOK, resp)
}
