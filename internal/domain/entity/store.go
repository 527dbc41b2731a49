package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Store is a location-tagged listing identified publicly by its slug.
type Store struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	Tags        []string
	Location    Location
	PhotoRef    string
	AuthorID    uuid.UUID
	Reviews     []*Review // Attached on every read
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location pins a store on the map. Point is (lon, lat).
type Location struct {
	Point   orb.Point
	Address string
}

// NewLocation builds a Location from longitude and latitude.
func NewLocation(lon, lat float64, address string) Location {
	return Location{Point: orb.Point{lon, lat}, Address: address}
}

// Valid reports whether the coordinates are on the globe.
func (l Location) Valid() bool {
	lon, lat := l.Point.Lon(), l.Point.Lat()

	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// IsOwnedBy reports whether userID created the store.
func (s *Store) IsOwnedBy(userID uuid.UUID) bool {
	return s.AuthorID == userID
}

// AverageRating returns the mean of the attached reviews, zero when none.
func (s *Store) AverageRating() float64 {
	if len(s.Reviews) == 0 {
		return 0
	}

	total := 0
	for _, r := range s.Reviews {
		total += r.Rating
	}

	return float64(total) / float64(len(s.Reviews))
}

// NormalizeTags trims, drops empties and deduplicates tags keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

// TagCount is one entry in the tag cloud.
type TagCount struct {
	Tag   string
	Count int64
}

// StoreDistance is a store found by a proximity query.
type StoreDistance struct {
	Store          *Store
	DistanceMeters float64
}

// RankedStore is a store with its review aggregate.
type RankedStore struct {
	Store         *Store
	AverageRating float64
	ReviewCount   int64
}
