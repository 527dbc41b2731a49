package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is an append-only rating of a store by a user.
type Review struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	StoreID   uuid.UUID
	Rating    int
	Text      string
	CreatedAt time.Time
}

// ValidRating reports whether rating is within [MinRating, MaxRating].
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
