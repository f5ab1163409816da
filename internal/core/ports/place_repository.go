package ports

import (
	"context"

	"github.com/worldwise/trip-planner-api/internal/core/domain"
)

// PlaceRepository defines owner-scoped persistence for one place collection
// (cities or plans). Every query filters by the owner id, which makes access
// to other users' records structurally impossible at this layer.
type PlaceRepository interface {
	// FindByOwner returns all places of the owner, creation time ascending.
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Place, error)
	// FindByID returns ErrPlaceNotFound for records that are absent or owned
	// by someone else.
	FindByID(ctx context.Context, ownerID, id string) (*domain.Place, error)
	Insert(ctx context.Context, place *domain.Place) (*domain.Place, error)
	// Delete removes the record matching both id and owner. Deleting a
	// missing or foreign record is a silent no-op.
	Delete(ctx context.Context, ownerID, id string) error
	// DeleteAll wipes the whole collection (periodic purge job).
	DeleteAll(ctx context.Context) (int64, error)
}
