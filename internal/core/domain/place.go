package domain

import (
	"errors"
	"time"
)

var ErrPlaceNotFound = errors.New("not found")

var ErrUnsupportedMedia = errors.New("unsupported media type")
var ErrFileTooLarge = errors.New("file too large")

// Position is a geographic point on the world map.
type Position struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Place is a travel record owned by exactly one user. Visited cities and
// planned trips share this shape; they only differ in which collection they
// live in and whether a position is mandatory.
//
// OwnerID is stamped by the server from the authenticated caller and is never
// taken from client input. Every read and write is filtered by it, so a place
// that belongs to someone else is indistinguishable from one that does not
// exist.
type Place struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"-"`
	CityName  string     `json:"cityName"`
	Country   string     `json:"country,omitempty"`
	Emoji     string     `json:"emoji,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Position  *Position  `json:"position,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
