package usecase

import (
	"context"

	"delicious/internal/domain/entity"

	"github.com/google/uuid"
)

// AddReviewInput defines a new review.
type AddReviewInput struct {
	AuthorID uuid.UUID
	StoreID  uuid.UUID
	Rating   int
	Text     string
}

// ReviewUsecase appends to and reads the review ledger. Reviews are never edited.
type ReviewUsecase interface {
	AddReview(ctx context.Context, input *AddReviewInput) (*entity.Review, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Review, error)
}
