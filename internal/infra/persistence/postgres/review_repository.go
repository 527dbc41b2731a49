package postgres

import (
	"context"

	"delicious/internal/domain/entity"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/repository"
	"delicious/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create appends a review. Reviews are never updated.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("review references a missing store or author")
		}

		return translateError(err, "failed to create review")
	}

	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindByStoreIDs returns the reviews of the given stores, newest first.
func (repo *reviewRepository) FindByStoreIDs(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.Review, error) {
	if len(storeIDs) == 0 {
		return []*entity.Review{}, nil
	}

	var reviewMs []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("store_id IN ?", storeIDs).
		Order("created_at DESC").
		Order("id ASC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, translateError(err, "failed to find reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, m := range reviewMs {
		reviews = append(reviews, toReviewDomain(m))
	}

	return reviews, nil
}
