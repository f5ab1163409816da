package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/worldwise/trip-planner-api/internal/api/metrics"
	"github.com/worldwise/trip-planner-api/internal/core/domain"
	"github.com/worldwise/trip-planner-api/internal/core/ports"
)

const maxAvatarBytes = 4 << 20 // 4 MiB

// fallbackAvatarBase serves a stable, distinct placeholder per user id.
const fallbackAvatarBase = "https://i.pravatar.cc/100?u="

// allowedAvatarTypes is the declared-MIME whitelist. "image/jpg" is a common
// non-standard alias some clients send for JPEG.
var allowedAvatarTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
	"image/webp": {},
	"image/gif":  {},
}

// AvatarService validates and stores uploaded avatar images and composes
// their public URLs.
type AvatarService struct {
	repo       ports.UserRepository
	files      ports.FileStore
	publicBase string
	log        zerolog.Logger
}

func NewAvatarService(repo ports.UserRepository, files ports.FileStore, publicBase string, log zerolog.Logger) *AvatarService {
	return &AvatarService{repo: repo, files: files, publicBase: publicBase, log: log}
}

// Accept rejects anything that is not a whitelisted image type or exceeds the
// size ceiling, stores the bytes under a name derived from the caller and the
// current timestamp, and records the relative path on the user.
func (s *AvatarService) Accept(ctx context.Context, userID string, upload ports.AvatarUpload) (*domain.User, error) {
	mime := strings.ToLower(strings.TrimSpace(upload.MimeType))
	if _, ok := allowedAvatarTypes[mime]; !ok {
		metrics.AvatarUploadsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrUnsupportedMedia
	}
	if upload.Size > maxAvatarBytes {
		metrics.AvatarUploadsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrFileTooLarge
	}

	// Resolve the account before touching the disk: a token can outlive the
	// user it names, and such a caller must not leave an orphan file behind.
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	// <userID>-<epochMillis><ext>: collision-resistant across users by the id
	// and across time by the millisecond stamp. Same-instant uploads from one
	// user are not deduplicated; last write wins on the avatar field.
	ext := strings.ToLower(filepath.Ext(upload.FileName))
	name := fmt.Sprintf("%s-%d%s", userID, time.Now().UnixMilli(), ext)

	relPath, err := s.files.Save(name, upload.Content)
	if err != nil {
		return nil, fmt.Errorf("store avatar: %w", err)
	}

	user, err := s.repo.SetAvatar(ctx, userID, relPath)
	if err != nil {
		return nil, err
	}

	metrics.AvatarUploadsTotal.WithLabelValues("accepted").Inc()
	s.log.Info().Str("user_id", userID).Str("path", relPath).Msg("avatar stored")
	return user, nil
}

// PublicURL returns the absolute avatar URL. The configured public base wins
// over the current request's scheme+host; avatar-less users get a placeholder
// keyed by their id.
func (s *AvatarService) PublicURL(user *domain.User, requestBase string) string {
	if user == nil || user.Avatar == "" {
		id := "anon"
		if user != nil && user.ID != "" {
			id = user.ID
		}
		return fallbackAvatarBase + id
	}

	base := s.publicBase
	if base == "" {
		base = requestBase
	}

	rel := user.Avatar
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return strings.TrimRight(base, "/") + rel
}
