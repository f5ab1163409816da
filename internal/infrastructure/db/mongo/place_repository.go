package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/worldwise/trip-planner-api/internal/core/domain"
)

// PlaceRepository persists one place collection ("cities" or "plans"). Both
// collections share the document shape; two instances of this type cover them.
type PlaceRepository struct {
	coll *mongo.Collection
}

func NewPlaceRepository(db *mongo.Database, collection string) *PlaceRepository {
	return &PlaceRepository{coll: db.Collection(collection)}
}

type mongoPosition struct {
	Lat float64 `bson:"lat"`
	Lng float64 `bson:"lng"`
}

type mongoPlace struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"owner_id"`
	CityName  string             `bson:"city_name"`
	Country   string             `bson:"country,omitempty"`
	Emoji     string             `bson:"emoji,omitempty"`
	Date      *time.Time         `bson:"date,omitempty"`
	Notes     string             `bson:"notes,omitempty"`
	Position  *mongoPosition     `bson:"position,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mp mongoPlace) toDomain() domain.Place {
	p := domain.Place{
		ID:        mp.ID.Hex(),
		OwnerID:   mp.OwnerID,
		CityName:  mp.CityName,
		Country:   mp.Country,
		Emoji:     mp.Emoji,
		Date:      mp.Date,
		Notes:     mp.Notes,
		CreatedAt: mp.CreatedAt,
	}
	if mp.Position != nil {
		p.Position = &domain.Position{Lat: mp.Position.Lat, Lng: mp.Position.Lng}
	}
	return p
}

func fromDomain(p *domain.Place) mongoPlace {
	mp := mongoPlace{
		OwnerID:   p.OwnerID,
		CityName:  p.CityName,
		Country:   p.Country,
		Emoji:     p.Emoji,
		Date:      p.Date,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
	if p.Position != nil {
		mp.Position = &mongoPosition{Lat: p.Position.Lat, Lng: p.Position.Lng}
	}
	return mp
}

// FindByOwner returns the owner's places, creation time ascending. The stable
// order keeps pagination-free clients deterministic.
func (r *PlaceRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find places: %w", err)
	}

	var docs []mongoPlace
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}

	places := make([]domain.Place, 0, len(docs))
	for _, d := range docs {
		places = append(places, d.toDomain())
	}
	return places, nil
}

// FindByID applies the owner filter as part of the single query, so a foreign
// record decodes to the same ErrPlaceNotFound as a missing one.
func (r *PlaceRepository) FindByID(ctx context.Context, ownerID, id string) (*domain.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlaceNotFound
	}

	var mp mongoPlace
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "owner_id": ownerID}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}

	place := mp.toDomain()
	return &place, nil
}

func (r *PlaceRepository) Insert(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomain(place)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert place: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

// Delete removes the record matching both id and owner. The deleted count is
// ignored: a missing or foreign id must stay indistinguishable from a real
// delete.
func (r *PlaceRepository) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID}); err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	return nil
}

// DeleteAll wipes the collection; used only by the periodic purge job.
func (r *PlaceRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete all places: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the owner/creation-time index used by every list query.
func (r *PlaceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
