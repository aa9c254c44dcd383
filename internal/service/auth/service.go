package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error)
	Create(ctx context.Context, user *domain.User, passwordHash string) (*domain.User, error)
}

// jwtManager defines the token issuing interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, username, role string) (string, error)
}

// Service implements registration and password login.
type Service struct {
	log      *slog.Logger
	users    userRepo
	jwt      jwtManager
	hashCost int
	now      func() time.Time
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, hashCost int) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		jwt:      jwt,
		hashCost: hashCost,
		now:      func() time.Time { return time.Now().UTC() },
	}
}
