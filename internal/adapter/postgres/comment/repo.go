// Package comment implements the Comment repository using PostgreSQL.
package comment

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

const table = "task_comments"

var columns = []string{"id", "task_id", "author_id", "body", "created_at", "updated_at"}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a comment and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.TaskID, c.AuthorID, c.Body, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert comment: %w", err)
	}

	return r.getOne(ctx, c.ID, query, args)
}

// Update replaces the body of a comment.
func (r *Repo) Update(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("body", c.Body).
		Set("updated_at", c.UpdatedAt).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update comment: %w", err)
	}

	return r.getOne(ctx, c.ID, query, args)
}

// Delete removes a single comment.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete comment: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	return postgres.CheckAffected(tag, "comment", id)
}

// DeleteByTaskID removes every comment of a task. Zero rows is not an error.
func (r *Repo) DeleteByTaskID(ctx context.Context, taskID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"task_id": taskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete comments: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get comment: %w", err)
	}

	return r.getOne(ctx, id, query, args)
}

// ListByTaskID returns the comments of a task with author usernames, oldest first.
func (r *Repo) ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]domain.CommentView, error) {
	query, args, err := postgres.Builder.
		Select(
			"c.id", "c.task_id", "c.author_id", "c.body", "c.created_at", "c.updated_at",
			"u.username AS author_username",
		).
		From(table + " c").
		Join("users u ON u.id = c.author_id").
		Where(squirrel.Eq{"c.task_id": taskID}).
		OrderBy("c.created_at ASC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments: %w", err)
	}

	var rows []commentViewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}

	views := make([]domain.CommentView, len(rows))
	for i, row := range rows {
		views[i] = domain.CommentView{
			Comment:        row.commentRow.toDomain(),
			AuthorUsername: row.AuthorUsername,
		}
	}
	return views, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Comment, error) {
	var row commentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	c := row.toDomain()
	return &c, nil
}

type commentRow struct {
	ID        uuid.UUID `db:"id"`
	TaskID    uuid.UUID `db:"task_id"`
	AuthorID  uuid.UUID `db:"author_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type commentViewRow struct {
	commentRow
	AuthorUsername string `db:"author_username"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		TaskID:    r.TaskID,
		AuthorID:  r.AuthorID,
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
