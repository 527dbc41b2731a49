package handler

import (
	"time"

	"delicious/internal/domain/entity"
	"delicious/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Gravatar string      `json:"gravatar"`
	Hearts   []uuid.UUID `json:"hearts"`
}

// AuthResponse carries a fresh session.
type AuthResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

// LocationResponse is a GeoJSON point plus the street address.
type LocationResponse struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // [lng, lat]
	Address     string     `json:"address"`
}

// ReviewResponse is one review.
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author"`
	StoreID   uuid.UUID `json:"store"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreResponse is a store with its reviews.
type StoreResponse struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	Tags          []string          `json:"tags"`
	Location      LocationResponse  `json:"location"`
	Photo         string            `json:"photo,omitempty"`
	AuthorID      uuid.UUID         `json:"author"`
	Reviews       []*ReviewResponse `json:"reviews"`
	AverageRating float64           `json:"average_rating"`
	CreatedAt     time.Time         `json:"created_at"`
}

// NearbyStoreResponse is a store found by proximity.
type NearbyStoreResponse struct {
	*StoreResponse
	DistanceMeters float64 `json:"distance_meters"`
}

// RankedStoreResponse is one row of the top rated list.
type RankedStoreResponse struct {
	Store         *StoreResponse `json:"store"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int64          `json:"review_count"`
}

// StorePageResponse is one page of the listing.
type StorePageResponse struct {
	Stores     []*StoreResponse `json:"stores"`
	Page       int              `json:"page"`
	Pages      int              `json:"pages"`
	Total      int64            `json:"total"`
	OutOfRange bool             `json:"out_of_range"`
}

// TagCountResponse is one tag of the tag cloud.
type TagCountResponse struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// TagListingResponse is the tag cloud with the selected tag's stores.
type TagListingResponse struct {
	Tags   []TagCountResponse `json:"tags"`
	Tag    string             `json:"tag,omitempty"`
	Stores []*StoreResponse   `json:"stores"`
}

func toUserResponse(user *entity.User) *UserResponse {
	hearts := user.FavoriteStoreIDs
	if hearts == nil {
		hearts = []uuid.UUID{}
	}

	return &UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Gravatar: user.GravatarURL(),
		Hearts:   hearts,
	}
}

func toReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		AuthorID:  review.AuthorID,
		StoreID:   review.StoreID,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return out
}

func toStoreResponse(store *entity.Store) *StoreResponse {
	tags := store.Tags
	if tags == nil {
		tags = []string{}
	}

	return &StoreResponse{
		ID:          store.ID,
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Tags:        tags,
		Location: LocationResponse{
			Type:        "Point",
			Coordinates: [2]float64{store.Location.Point.Lon(), store.Location.Point.Lat()},
			Address:     store.Location.Address,
		},
		Photo:         store.PhotoRef,
		AuthorID:      store.AuthorID,
		Reviews:       toReviewResponses(store.Reviews),
		AverageRating: store.AverageRating(),
		CreatedAt:     store.CreatedAt,
	}
}

func toStoreResponses(stores []*entity.Store) []*StoreResponse {
	out := make([]*StoreResponse, 0, len(stores))
	for _, store := range stores {
		out = append(out, toStoreResponse(store))
	}

	return out
}

func toAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		User:        toUserResponse(out.User),
		AccessToken: out.AccessToken,
		ExpiresAt:   out.ExpiresAt,
	}
}
