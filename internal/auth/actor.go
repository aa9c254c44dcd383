package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// ActorResolver turns the authenticated user id stored in the request
// context into a domain.Actor. The role is read from storage, not from the
// token.
type ActorResolver struct {
	users userRepo
}

// NewActorResolver creates a resolver backed by users.
func NewActorResolver(users userRepo) *ActorResolver {
	return &ActorResolver{users: users}
}

// CurrentActor returns the acting user. It fails with ErrUnauthorized when
// the context carries no user or the user no longer exists.
func (r *ActorResolver) CurrentActor(ctx context.Context) (domain.Actor, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	u, err := r.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Actor{}, domain.ErrUnauthorized
		}
		return domain.Actor{}, fmt.Errorf("resolve actor: %w", err)
	}

	return u.Actor(), nil
}
