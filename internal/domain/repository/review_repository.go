package repository

import (
	"context"

	"delicious/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository is the append-only review ledger.
type ReviewRepository interface {
	// Create appends a review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByStoreIDs returns reviews of the given stores, newest first.
	FindByStoreIDs(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.Review, error)
}
