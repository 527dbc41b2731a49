package usecase

import (
	"context"

	"delicious/internal/domain/entity"
	"delicious/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PhotoUpload is an image attached to a store write.
type PhotoUpload struct {
	ContentType string
	Data        []byte
}

// StoreInput holds the editable fields of a store.
type StoreInput struct {
	Name        string
	Description string
	Tags        []string
	Longitude   float64
	Latitude    float64
	Address     string
	Photo       *PhotoUpload // Optional
}

// CreateStoreInput defines a new store authored by AuthorID.
type CreateStoreInput struct {
	AuthorID uuid.UUID
	StoreInput
}

// UpdateStoreInput edits StoreID on behalf of EditorID, who must own it.
type UpdateStoreInput struct {
	StoreID  uuid.UUID
	EditorID uuid.UUID
	StoreInput
}

// StorePage is one page of the store listing.
type StorePage struct {
	Stores []*entity.Store
	Page   int
	Pages  int
	Total  int64
	// OutOfRange is set when the requested page was past the end and the last page was returned.
	OutOfRange bool
}

// TagListing is the tag cloud with the stores of the selected tag.
type TagListing struct {
	Tags   []entity.TagCount
	Tag    string
	Stores []*entity.Store
}

// StoreUsecase is the discovery and ranking engine plus store editing.
type StoreUsecase interface {
	CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)
	UpdateStore(ctx context.Context, input *UpdateStoreInput) (*entity.Store, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Store, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	ListStores(ctx context.Context, page int) (*StorePage, error)

	// ListTags returns tag counts and the stores of tag, or the newest page of stores when tag is empty.
	ListTags(ctx context.Context, tag string) (*TagListing, error)

	// Search ranks stores by text relevance. A blank query returns nothing.
	Search(ctx context.Context, query string) ([]*entity.Store, error)

	// SearchNear returns stores within maxDistanceMeters of point, nearest first.
	// The radius must be positive; it is capped at the configured maximum.
	SearchNear(ctx context.Context, point orb.Point, maxDistanceMeters float64) ([]*entity.StoreDistance, error)

	// TopRated returns stores with more than one review by average rating.
	TopRated(ctx context.Context, limit int) ([]*entity.RankedStore, error)

	// ResolveSlug previews the slug a new store named name would get.
	ResolveSlug(ctx context.Context, name string) (string, error)

	// StoreQRCode renders a PNG linking to the public store page.
	StoreQRCode(ctx context.Context, slug string) ([]byte, error)

	// OpenPhoto streams an uploaded store photo.
	OpenPhoto(ctx context.Context, ref string) (*service.Photo, error)
}
