// Package app wires configuration, storage, services and transport into a
// running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres"
	activityrepo "github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres/activity"
	commentrepo "github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres/comment"
	taskrepo "github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres/task"
	userrepo "github.com/Mbaimbai1985/taskmanagement/internal/adapter/postgres/user"
	"github.com/Mbaimbai1985/taskmanagement/internal/adapter/redis"
	"github.com/Mbaimbai1985/taskmanagement/internal/auth"
	"github.com/Mbaimbai1985/taskmanagement/internal/broadcast"
	"github.com/Mbaimbai1985/taskmanagement/internal/config"
	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/activity"
	authsvc "github.com/Mbaimbai1985/taskmanagement/internal/service/auth"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/comment"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/task"
	usersvc "github.com/Mbaimbai1985/taskmanagement/internal/service/user"
	"github.com/Mbaimbai1985/taskmanagement/internal/transport/dataloader"
	"github.com/Mbaimbai1985/taskmanagement/internal/transport/middleware"
	"github.com/Mbaimbai1985/taskmanagement/internal/transport/rest"
)

// authRequestsPerMinute caps login and registration attempts per client IP.
const authRequestsPerMinute = 20

type publisher interface {
	Publish(topic string, event domain.Event)
}

// Run loads configuration, connects to dependencies and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("redis_relay", cfg.Redis.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	hub := broadcast.NewHub(logger, cfg.Broadcast.BufferSize)
	health := rest.NewHealthHandler(pool, Version)

	var (
		pub   publisher = hub
		relay *redis.Relay
	)
	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()

		relay = redis.NewRelay(logger, client, hub, cfg.Redis.ChannelPrefix, cfg.Redis.QueueSize)
		pub = relay
		health.WithComponent("redis", rest.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}))
	}

	handler, stop := newHandler(cfg, logger, pool, hub, pub, health)
	defer stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if relay != nil {
		g.Go(func() error {
			return relay.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		// WebSocket connections are hijacked and not tracked by Shutdown;
		// closing the hub ends their streams.
		hub.Close()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped",
		slog.Uint64("broadcast_dropped", hub.Dropped()),
	)
	return nil
}

// newHandler builds repositories, services and the HTTP stack on top of
// pool. Events are published through pub and streamed from hub. The returned
// func releases background resources.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	hub *broadcast.Hub,
	pub publisher,
	health *rest.HealthHandler,
) (http.Handler, func()) {
	// Repositories
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	tasks := taskrepo.New(pool)
	comments := commentrepo.New(pool)
	activities := activityrepo.New(pool)

	// Services
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	actors := auth.NewActorResolver(users)
	activitySvc := activity.NewService(logger, activities, tasks, users, pub)
	taskSvc := task.NewService(logger, tasks, comments, activities, users, activitySvc, txm, pub)
	commentSvc := comment.NewService(logger, comments, tasks, users, activitySvc, txm, pub)
	authService := authsvc.NewService(logger, users, jwt, cfg.Auth.PasswordHashCost)
	userService := usersvc.NewService(logger, users)

	// Transport
	limiter := middleware.NewRateLimiter(time.Minute)

	router := rest.NewRouter(rest.Routes{
		Health:    health,
		Auth:      rest.NewAuthHandler(authService, logger),
		Users:     rest.NewUserHandler(userService, actors, logger),
		Tasks:     rest.NewTaskHandler(taskSvc, actors, logger),
		Comments:  rest.NewCommentHandler(commentSvc, actors, logger),
		Activity:  rest.NewActivityHandler(activitySvc, actors, logger),
		Stream:    rest.NewStreamHandler(hub, actors, originPatterns(cfg.CORS), cfg.Broadcast.WriteTimeout, logger),
		AuthLimit: limiter.Limit(authRequestsPerMinute),
		Loaders:   dataloader.Middleware(users),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
	)(router)

	return handler, limiter.Stop
}

// originPatterns converts CORS origins into host patterns for the WebSocket
// origin check.
func originPatterns(cfg config.CORSConfig) []string {
	var patterns []string
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch {
		case o == "":
		case o == "*":
			patterns = append(patterns, o)
		default:
			if u, err := url.Parse(o); err == nil && u.Host != "" {
				patterns = append(patterns, u.Host)
			} else {
				patterns = append(patterns, o)
			}
		}
	}
	return patterns
}
