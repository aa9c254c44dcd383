package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/task"
	"github.com/Mbaimbai1985/taskmanagement/internal/transport/dataloader"
)

type taskService interface {
	CreateTask(ctx context.Context, actor domain.Actor, input task.CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateTask(ctx context.Context, actor domain.Actor, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Task, error)
	ListAll(ctx context.Context) ([]domain.Task, error)
	Filter(ctx context.Context, actor domain.Actor, input task.FilterInput) ([]domain.Task, error)
	ListMineByPriority(ctx context.Context, actor domain.Actor, priority string) ([]domain.Task, error)
}

// TaskHandler serves /api/tasks.
type TaskHandler struct {
	svc    taskService
	actors actorResolver
	log    *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, actors actorResolver, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, actors: actors, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
}

// updateTaskRequest omits fields that are not changing. An assigneeId of
// null or "" removes the assignee.
type updateTaskRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *string       `json:"status"`
	Priority    *string       `json:"priority"`
	AssigneeID  presentString `json:"assigneeId"`
}

// presentString remembers whether its field appeared in the body, so an
// explicit null differs from an omitted field.
type presentString struct {
	Present bool
	Value   string
}

func (p *presentString) UnmarshalJSON(data []byte) error {
	p.Present = true
	if string(data) == "null" {
		p.Value = ""
		return nil
	}
	return json.Unmarshal(data, &p.Value)
}

func (req updateTaskRequest) toInput(id uuid.UUID) (task.UpdateTaskInput, error) {
	input := task.UpdateTaskInput{
		TaskID:      id,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		s := domain.TaskStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		input.Status = &s
	}
	if req.Priority != nil {
		p := domain.Priority(strings.ToUpper(strings.TrimSpace(*req.Priority)))
		input.Priority = &p
	}
	if req.AssigneeID.Present {
		assignee := uuid.Nil
		if raw := strings.TrimSpace(req.AssigneeID.Value); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				return task.UpdateTaskInput{}, domain.NewValidationError("assigneeId", "invalid id")
			}
			assignee = parsed
		}
		input.AssigneeID = &assignee
	}
	return input, nil
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.CurrentActor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createTaskRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.CreateTask(r.Context(), actor, task.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.Priority(strings.ToUpper(strings.TrimSpace(req.Priority))),
		Status:      domain.TaskStatus(strings.ToUpper(strings.TrimSpace(req.Status))),
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeTask(w, r, http.StatusCreated, created)
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, err := h.actors.CurrentActor(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeTask(w, r, http.StatusOK, t)
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.CurrentActor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input, err := req.toInput(id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), actor, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeTask(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.CurrentActor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), actor, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/tasks. With status or assignee query parameters it
// filters the actor's created tasks; otherwise it lists every task the actor
// created or is assigned to.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.CurrentActor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	assignee, err := queryUUID(r, "assignee")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var tasks []domain.Task
	if status == "" && assignee == nil {
		tasks, err = h.svc.ListMine(r.Context(), actor)
	} else {
		tasks, err = h.svc.Filter(r.Context(), actor, task.FilterInput{Status: status, AssigneeID: assignee})
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeTasks(w, r, tasks)
}

// ListAll handles GET /api/tasks/all.
func (h *TaskHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	if _, err := h.actors.CurrentActor(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tasks, err := h.svc.ListAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeTasks(w, r, tasks)
}

// ListByPriority handles GET /api/tasks/priority?priority=.
func (h *TaskHandler) ListByPriority(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.CurrentActor(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tasks, err := h.svc.ListMineByPriority(r.Context(), actor, r.URL.Query().Get("priority"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeTasks(w, r, tasks)
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func (h *TaskHandler) writeTask(w http.ResponseWriter, r *http.Request, status int, t *domain.Task) {
	names, err := dataloader.FromContext(r.Context()).Usernames(r.Context(), taskUserIDs([]domain.Task{*t}))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, status, toTaskResponse(t, names))
}

func (h *TaskHandler) writeTasks(w http.ResponseWriter, r *http.Request, tasks []domain.Task) {
	names, err := dataloader.FromContext(r.Context()).Usernames(r.Context(), taskUserIDs(tasks))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, toTaskResponse(&tasks[i], names))
	}
	writeData(w, http.StatusOK, resp)
}

// taskUserIDs collects the distinct creator and assignee ids of tasks.
func taskUserIDs(tasks []domain.Task) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(tasks)*2)
	ids := make([]uuid.UUID, 0, len(tasks)*2)
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for i := range tasks {
		add(tasks[i].CreatorID)
		if tasks[i].AssigneeID != nil {
			add(*tasks[i].AssigneeID)
		}
	}
	return ids
}
