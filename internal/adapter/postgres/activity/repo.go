// Package activity implements the task activity repository using PostgreSQL.
// Records are append-only; they are removed only together with their task.
package activity

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

const table = "task_activities"

var columns = []string{
	"id", "task_id", "actor_id", "kind", "description", "old_value", "new_value", "created_at",
}

// Repo provides activity record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends an activity record.
func (r *Repo) Create(ctx context.Context, rec *domain.ActivityRecord) (*domain.ActivityRecord, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			rec.ID, rec.TaskID, rec.ActorID, string(rec.Kind), rec.Description,
			rec.OldValue, rec.NewValue, rec.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert activity: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", rec.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// DeleteByTaskID removes every record of a task. Zero rows is not an error.
func (r *Repo) DeleteByTaskID(ctx context.Context, taskID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"task_id": taskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete activities: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByTaskID returns a task's history with actor usernames, newest first.
func (r *Repo) ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]domain.ActivityView, error) {
	query, args, err := postgres.Builder.
		Select(
			"a.id", "a.task_id", "a.actor_id", "a.kind", "a.description",
			"a.old_value", "a.new_value", "a.created_at",
			"u.username AS actor_username",
		).
		From(table + " a").
		Join("users u ON u.id = a.actor_id").
		Where(squirrel.Eq{"a.task_id": taskID}).
		OrderBy("a.created_at DESC", "a.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	var rows []activityViewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}

	views := make([]domain.ActivityView, len(rows))
	for i, row := range rows {
		views[i] = domain.ActivityView{
			ActivityRecord: row.activityRow.toDomain(),
			ActorUsername:  row.ActorUsername,
		}
	}
	return views, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type activityRow struct {
	ID          uuid.UUID `db:"id"`
	TaskID      uuid.UUID `db:"task_id"`
	ActorID     uuid.UUID `db:"actor_id"`
	Kind        string    `db:"kind"`
	Description string    `db:"description"`
	OldValue    *string   `db:"old_value"`
	NewValue    *string   `db:"new_value"`
	CreatedAt   time.Time `db:"created_at"`
}

type activityViewRow struct {
	activityRow
	ActorUsername string `db:"actor_username"`
}

func (r activityRow) toDomain() domain.ActivityRecord {
	return domain.ActivityRecord{
		ID:          r.ID,
		TaskID:      r.TaskID,
		ActorID:     r.ActorID,
		Kind:        domain.ActivityKind(r.Kind),
		Description: r.Description,
		OldValue:    r.OldValue,
		NewValue:    r.NewValue,
		CreatedAt:   r.CreatedAt,
	}
}
