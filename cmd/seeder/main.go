// Command seeder fills an empty database with demo accounts, tasks and
// comments. It is meant for local development, not production.
//
// Flags:
//
//	--force    seed even when users already exist (existing demo accounts are reused)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres"
	activityrepo "github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres/activity"
	commentrepo "github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres/comment"
	taskrepo "github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres/task"
	userrepo "github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres/user"
	"github.com/Mbaimbai1985/taskmanagement/internal/app"
	"github.com/Mbaimbai1985/taskmanagement/internal/app/seeder"
	"github.com/Mbaimbai1985/taskmanagement/internal/broadcast"
	"github.com/Mbaimbai1985/taskmanagement/internal/config"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/activity"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/comment"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/task"
)

func main() {
	forceFlag := flag.Bool("force", false, "seed even when users already exist")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Nobody is subscribed; events are dropped.
	hub := broadcast.NewHub(logger, cfg.Broadcast.BufferSize)
	defer hub.Close()

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	tasks := taskrepo.New(pool)
	comments := commentrepo.New(pool)
	activities := activityrepo.New(pool)

	activitySvc := activity.NewService(logger, activities, tasks, users, hub)
	taskSvc := task.NewService(logger, tasks, comments, activities, users, activitySvc, txm, hub)
	commentSvc := comment.NewService(logger, comments, tasks, users, activitySvc, txm, hub)

	s := seeder.New(logger, users, taskSvc, commentSvc, cfg.Auth.PasswordHashCost)
	res, err := s.Run(ctx, *forceFlag)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if res.Skipped {
		return
	}

	for _, acc := range seeder.DemoAccounts {
		logger.Info("demo account",
			slog.String("username", acc.Username),
			slog.String("email", acc.Email),
			slog.String("password", acc.Password),
			slog.String("role", string(acc.Role)),
		)
	}
}
