package ports

import (
	"context"
	"time"

	"github.com/worldwise/trip-planner-api/internal/core/domain"
)

// PlaceInput carries the client-supplied fields of a new place. The owner is
// deliberately absent: it is always stamped by the service from the
// authenticated caller.
type PlaceInput struct {
	CityName string
	Country  string
	Emoji    string
	Date     *time.Time
	Notes    string
	Position *domain.Position
}

// PlaceService defines the use-case operations shared by cities and plans.
type PlaceService interface {
	List(ctx context.Context, ownerID string) ([]domain.Place, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Place, error)
	Create(ctx context.Context, ownerID string, input PlaceInput) (*domain.Place, error)
	Delete(ctx context.Context, ownerID, id string) error
}
