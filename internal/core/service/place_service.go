package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/worldwise/trip-planner-api/internal/api/metrics"
	"github.com/worldwise/trip-planner-api/internal/core/domain"
	"github.com/worldwise/trip-planner-api/internal/core/ports"
)

// PlaceService implements owner-scoped CRUD for one place collection. Cities
// and plans run through two instances of this type; plans additionally
// require coordinates on create.
type PlaceService struct {
	repo            ports.PlaceRepository
	resource        string // "cities" or "plans", used for logs and metrics
	requirePosition bool
	log             zerolog.Logger
}

func NewPlaceService(repo ports.PlaceRepository, resource string, requirePosition bool, log zerolog.Logger) *PlaceService {
	return &PlaceService{repo: repo, resource: resource, requirePosition: requirePosition, log: log}
}

func (s *PlaceService) List(ctx context.Context, ownerID string) ([]domain.Place, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *PlaceService) Get(ctx context.Context, ownerID, id string) (*domain.Place, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

// Create stamps the owner from the authenticated caller; any owner the client
// may have sent never reaches this layer.
func (s *PlaceService) Create(ctx context.Context, ownerID string, input ports.PlaceInput) (*domain.Place, error) {
	if input.CityName == "" {
		return nil, domain.ErrValidation
	}
	if s.requirePosition && input.Position == nil {
		return nil, domain.ErrValidation
	}

	place := &domain.Place{
		OwnerID:   ownerID,
		CityName:  input.CityName,
		Country:   input.Country,
		Emoji:     input.Emoji,
		Date:      input.Date,
		Notes:     input.Notes,
		Position:  input.Position,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, place)
	if err != nil {
		s.log.Error().Err(err).Str("resource", s.resource).Msg("failed to insert place")
		return nil, err
	}

	metrics.PlacesCreatedTotal.WithLabelValues(s.resource).Inc()
	s.log.Info().Str("resource", s.resource).Str("id", created.ID).Str("owner_id", ownerID).Msg("place created")
	return created, nil
}

// Delete removes the record matching both id and owner. A missing or foreign
// id deletes nothing and still succeeds — the scoped query makes the two
// cases indistinguishable on purpose.
func (s *PlaceService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	metrics.PlacesDeletedTotal.WithLabelValues(s.resource).Inc()
	return nil
}
