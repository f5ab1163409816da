package ports

import (
	"context"
	"io"

	"github.com/worldwise/trip-planner-api/internal/core/domain"
)

// AvatarUpload carries one uploaded file as declared by the client.
type AvatarUpload struct {
	FileName string
	MimeType string
	Size     int64
	Content  io.Reader
}

type AvatarService interface {
	// Accept validates, stores, and records the uploaded image, returning the
	// updated user.
	Accept(ctx context.Context, userID string, upload AvatarUpload) (*domain.User, error)
	// PublicURL composes the absolute avatar URL for a user, falling back to a
	// stable placeholder keyed by the user's id when no avatar was uploaded.
	// requestBase is the scheme+host of the current request, used when no
	// public base URL is configured.
	PublicURL(user *domain.User, requestBase string) string
}

// FileStore persists uploaded bytes and returns the relative public path they
// are served under.
type FileStore interface {
	Save(name string, content io.Reader) (string, error)
}
