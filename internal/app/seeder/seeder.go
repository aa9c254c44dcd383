package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/task"
)

// userStore is the subset of the user repository the seeder writes through.
type userStore interface {
	Count(ctx context.Context) (int, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error)
}

type taskCreator interface {
	CreateTask(ctx context.Context, actor domain.Actor, input task.CreateTaskInput) (*domain.Task, error)
}

type commentAdder interface {
	AddComment(ctx context.Context, actor domain.Actor, taskID uuid.UUID, body string) (*domain.CommentView, error)
}

// Result counts what a Run inserted.
type Result struct {
	Users    int
	Tasks    int
	Comments int
	Skipped  bool
	Duration time.Duration
}

// Seeder fills an empty database with demo accounts, tasks and comments.
// Tasks and comments go through the services so activity entries are
// recorded the same way as for live traffic.
type Seeder struct {
	log      *slog.Logger
	users    userStore
	tasks    taskCreator
	comments commentAdder
	hashCost int
	now      func() time.Time
}

// New creates a Seeder. hashCost is the bcrypt cost for demo passwords.
func New(log *slog.Logger, users userStore, tasks taskCreator, comments commentAdder, hashCost int) *Seeder {
	return &Seeder{
		log:      log.With("component", "seeder"),
		users:    users,
		tasks:    tasks,
		comments: comments,
		hashCost: hashCost,
		now:      time.Now,
	}
}

// Run seeds demo data unless users already exist. With force set, missing
// demo accounts are created and the task and comment phases run again.
func (s *Seeder) Run(ctx context.Context, force bool) (*Result, error) {
	start := s.now()
	res := &Result{}

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if count > 0 && !force {
		s.log.InfoContext(ctx, "database already has users, skipping", slog.Int("users", count))
		res.Skipped = true
		return res, nil
	}

	accounts, err := s.seedUsers(ctx, res)
	if err != nil {
		return nil, err
	}
	tasks, err := s.seedTasks(ctx, accounts, res)
	if err != nil {
		return nil, err
	}
	if err := s.seedComments(ctx, accounts, tasks, res); err != nil {
		return nil, err
	}

	res.Duration = s.now().Sub(start)
	s.log.InfoContext(ctx, "seeding completed",
		slog.Int("users", res.Users),
		slog.Int("tasks", res.Tasks),
		slog.Int("comments", res.Comments),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// ---------------------------------------------------------------------------
// Phases
// ---------------------------------------------------------------------------

func (s *Seeder) seedUsers(ctx context.Context, res *Result) (map[string]domain.Actor, error) {
	accounts := make(map[string]domain.Actor, len(DemoAccounts))

	for _, acc := range DemoAccounts {
		existing, err := s.users.GetByUsername(ctx, acc.Username)
		switch {
		case err == nil:
			accounts[acc.Username] = existing.Actor()
			continue
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("lookup user %s: %w", acc.Username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), s.hashCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", acc.Username, err)
		}

		now := s.now().UTC()
		created, err := s.users.Create(ctx, &domain.User{
			ID:        uuid.New(),
			Username:  acc.Username,
			Email:     acc.Email,
			Role:      acc.Role,
			CreatedAt: now,
			UpdatedAt: now,
		}, string(hash))
		if err != nil {
			return nil, fmt.Errorf("create user %s: %w", acc.Username, err)
		}

		accounts[acc.Username] = created.Actor()
		res.Users++
	}

	s.log.InfoContext(ctx, "users seeded", slog.Int("created", res.Users))
	return accounts, nil
}

func (s *Seeder) seedTasks(ctx context.Context, accounts map[string]domain.Actor, res *Result) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(demoTasks))

	for _, dt := range demoTasks {
		creator := accounts[dt.creator]
		assignee := accounts[dt.assignee].ID
		desc := dt.description

		t, err := s.tasks.CreateTask(ctx, creator, task.CreateTaskInput{
			Title:       dt.title,
			Description: &desc,
			Priority:    dt.priority,
			Status:      dt.status,
			AssigneeID:  &assignee,
		})
		if err != nil {
			return nil, fmt.Errorf("create task %q: %w", dt.title, err)
		}
		tasks = append(tasks, t)
		res.Tasks++
	}

	s.log.InfoContext(ctx, "tasks seeded", slog.Int("created", res.Tasks))
	return tasks, nil
}

func (s *Seeder) seedComments(ctx context.Context, accounts map[string]domain.Actor, tasks []*domain.Task, res *Result) error {
	for _, dc := range demoComments {
		if dc.task >= len(tasks) {
			continue
		}
		if _, err := s.comments.AddComment(ctx, accounts[dc.author], tasks[dc.task].ID, dc.body); err != nil {
			return fmt.Errorf("add comment to %q: %w", tasks[dc.task].Title, err)
		}
		res.Comments++
	}

	s.log.InfoContext(ctx, "comments seeded", slog.Int("created", res.Comments))
	return nil
}
