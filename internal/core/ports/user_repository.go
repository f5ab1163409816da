package ports

import (
	"context"

	"github.com/worldwise/trip-planner-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Email uniqueness is enforced at write time by the store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// SetAvatar replaces the avatar path and returns the updated user.
	SetAvatar(ctx context.Context, id, relativePath string) (*domain.User, error)
}
