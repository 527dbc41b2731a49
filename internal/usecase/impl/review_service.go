package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "delicious/internal/delivery/context"
	"delicious/internal/domain/entity"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/repository"
	"delicious/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddReview appends a review after checking the author and store exist.
// Invalid input is rejected before any write.
func (srv *reviewService) AddReview(ctx context.Context, input *usecase.AddReviewInput) (*entity.Review, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("review text is required")
	}

	review := &entity.Review{
		ID:        uuid.New(),
		AuthorID:  input.AuthorID,
		StoreID:   input.StoreID,
		Rating:    input.Rating,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, input.AuthorID); err != nil {
			return mapNotFound(err)
		}
		if _, err := repoFactory.StoreRepo().FindByID(ctx, input.StoreID); err != nil {
			return mapNotFound(err)
		}

		return repoFactory.ReviewRepo().Create(ctx, review)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add review",
			slog.Any("storeID", input.StoreID),
			slog.Any("authorID", input.AuthorID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to add review")
	}

	srv.log(ctx).Info("Review added", slog.Any("reviewID", review.ID), slog.Any("storeID", review.StoreID))

	return review, nil
}

func (srv *reviewService) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByStoreIDs(ctx, []uuid.UUID{storeID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
