package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

type commentService interface {
	AddComment(ctx context.Context, actor domain.Actor, taskID uuid.UUID, body string) (*domain.CommentView, error)
	ListComments(ctx context.Context, taskID uuid.UUID) ([]domain.CommentView, error)
	UpdateComment(ctx context.Context, actor domain.Actor, commentID uuid.UUID, body string) (*domain.CommentView, error)
	DeleteComment(ctx context.Context, actor domain.Actor, commentID uuid.UUID) error
}

// CommentHandler serves task comment endpoints.
type CommentHandler struct {
	svc    commentService
	actors actorResolver
	log    *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, actors actorResolver, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, actors: actors, log: logger.With("handler", "comment")}
}

type commentRequest struct {
	Body string `json:"body"`
}

// Add handles POST /api/tasks/{id}/comments.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.CurrentActor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	taskID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.AddComment(r.Context(), actor, taskID, req.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toCommentResponse(c))
}

// List handles GET /api/tasks/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := h.actors.CurrentActor(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	taskID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comments, err := h.svc.ListComments(r.Context(), taskID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]commentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, toCommentResponse(&comments[i]))
	}
	writeData(w, http.StatusOK, resp)
}

// Update handles PUT /api/tasks/comments/{commentId}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.CurrentActor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	commentID, err := pathUUID(r, "commentId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.UpdateComment(r.Context(), actor, commentID, req.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toCommentResponse(c))
}

// Delete handles DELETE /api/tasks/comments/{commentId}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.CurrentActor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	commentID, err := pathUUID(r, "commentId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteComment(r.Context(), actor, commentID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
