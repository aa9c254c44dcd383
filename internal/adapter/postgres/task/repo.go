// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres"
	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

const table = "tasks"

var columns = []string{
	"id", "title", "description", "status", "priority",
	"creator_id", "assignee_id", "created_at", "updated_at",
}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a task and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			t.ID, t.Title, t.Description, string(t.Status), string(t.Priority),
			t.CreatorID, t.AssigneeID, t.CreatedAt, t.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert task: %w", err)
	}

	return r.getOne(ctx, t.ID, query, args)
}

// Update overwrites the mutable fields of a task. Last write wins.
func (r *Repo) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	query, args, err := postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"title":       t.Title,
			"description": t.Description,
			"status":      string(t.Status),
			"priority":    string(t.Priority),
			"assignee_id": t.AssigneeID,
			"updated_at":  t.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update task: %w", err)
	}

	return r.getOne(ctx, t.ID, query, args)
}

// Delete removes a task row. Comments and activities must be gone already.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete task: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	return postgres.CheckAffected(tag, "task", id)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a task by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get task: %w", err)
	}

	return r.getOne(ctx, id, query, args)
}

// List returns the tasks matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	sb := postgres.Builder.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	if filter.CreatorID != nil {
		sb = sb.Where(squirrel.Eq{"creator_id": *filter.CreatorID})
	}
	if filter.AssigneeID != nil {
		sb = sb.Where(squirrel.Eq{"assignee_id": *filter.AssigneeID})
	}
	if filter.InvolvedUserID != nil {
		sb = sb.Where(squirrel.Or{
			squirrel.Eq{"creator_id": *filter.InvolvedUserID},
			squirrel.Eq{"assignee_id": *filter.InvolvedUserID},
		})
	}
	if filter.Status != nil {
		sb = sb.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Priority != nil {
		sb = sb.Where(squirrel.Eq{"priority": string(*filter.Priority)})
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tasks: %w", err)
	}

	var rows []taskRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}

	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toDomain()
	}
	return tasks, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Task, error) {
	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	t := row.toDomain()
	return &t, nil
}

type taskRow struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Status      string     `db:"status"`
	Priority    string     `db:"priority"`
	CreatorID   uuid.UUID  `db:"creator_id"`
	AssigneeID  *uuid.UUID `db:"assignee_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r taskRow) toDomain() domain.Task {
	return domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.TaskStatus(r.Status),
		Priority:    domain.Priority(r.Priority),
		CreatorID:   r.CreatorID,
		AssigneeID:  r.AssigneeID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
