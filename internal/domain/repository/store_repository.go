package repository

import (
	"context"

	"delicious/internal/domain/entity"
	"delicious/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

var (
	// ErrStoreNotFound is returned when no store matches the lookup.
	ErrStoreNotFound = errors.New("store not found")

	// ErrSlugTaken is returned when the unique slug index rejects a write.
	ErrSlugTaken = errors.New("slug already taken")
)

// StoreRating is one row of the ranking aggregation.
type StoreRating struct {
	StoreID       uuid.UUID
	AverageRating float64
	ReviewCount   int64
}

// StoreRepository defines the persistence operations on stores.
// Returned stores never carry reviews; callers attach them.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	Update(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Store, error)

	// FindByIDs returns the stores in the order of ids, skipping unknown ids.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error)

	// List returns a page of stores, newest first, and the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Store, int64, error)

	// SlugsWithPrefix returns slugs that start with base (case-insensitive),
	// ignoring the store excludeID. It may over-match; callers filter.
	SlugsWithPrefix(ctx context.Context, base string, excludeID uuid.UUID) ([]string, error)

	// SearchText returns stores whose name or description match query, best match first.
	SearchText(ctx context.Context, query string, limit int) ([]*entity.Store, error)

	// SearchNear returns stores within maxDistanceMeters of point, nearest first.
	SearchNear(ctx context.Context, point orb.Point, maxDistanceMeters float64, limit int) ([]*entity.Store, error)

	// TopRated aggregates reviews per store, keeps stores with more than one review,
	// and orders by average rating descending then store id ascending.
	TopRated(ctx context.Context, limit int) ([]StoreRating, error)

	// ListTags returns every tag with its store count, most used first.
	ListTags(ctx context.Context) ([]entity.TagCount, error)

	// FindByTag returns stores carrying tag, newest first.
	FindByTag(ctx context.Context, tag string) ([]*entity.Store, error)
}
