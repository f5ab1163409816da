package ports

import (
	"context"

	"github.com/worldwise/trip-planner-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenService signs and verifies stateless bearer tokens. Verify is a pure
// computation: no store lookup happens, so a token stays valid until expiry
// even if the account it references disappears.
type TokenService interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}
