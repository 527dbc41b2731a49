// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"delicious/internal/domain/entity"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// enrichWithReviews attaches reviews to every store with one batched query.
// Every read path that returns stores goes through it.
func enrichWithReviews(ctx context.Context, reviewRepo repository.ReviewRepository, stores ...*entity.Store) error {
	if len(stores) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(stores))
	byID := make(map[uuid.UUID]*entity.Store, len(stores))
	for _, store := range stores {
		store.Reviews = []*entity.Review{}
		ids = append(ids, store.ID)
		byID[store.ID] = store
	}

	reviews, err := reviewRepo.FindByStoreIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load reviews")
	}

	for _, review := range reviews {
		if store, ok := byID[review.StoreID]; ok {
			store.Reviews = append(store.Reviews, review)
		}
	}

	return nil
}

// mapNotFound turns repository misses into their domain error kinds.
func mapNotFound(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrStoreNotFound):
		return domainerrors.ErrStoreNotFound
	default:
		return err
	}
}
