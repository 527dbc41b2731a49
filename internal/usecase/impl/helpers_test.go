package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"delicious/config"
	"delicious/internal/domain/entity"
	"delicious/internal/domain/repository"
	mockRepo "delicious/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		App:      &config.AppConfig{Host: "https://delicious.test/"},
		Recovery: &config.RecoveryConfig{TokenTTL: time.Hour},
		Discovery: &config.DiscoveryConfig{
			SearchLimit:         5,
			NearLimit:           10,
			DefaultRadiusMeters: 10000,
			MaxRadiusMeters:     50000,
			TopRatedLimit:       10,
			PageSize:            6,
		},
	}
}

// txFixture runs every Execute callback against a factory backed by the given mocks.
type txFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	storeRepo *mockRepo.MockStoreRepository
	review    *mockRepo.MockReviewRepository
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	fx := &txFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		storeRepo: mockRepo.NewMockStoreRepository(t),
		review:    mockRepo.NewMockReviewRepository(t),
	}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo).Maybe()
	fx.factory.EXPECT().ReviewRepo().Return(fx.review).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).Maybe()

	return fx
}

func testStore(name, slug string) *entity.Store {
	return &entity.Store{
		ID:       uuid.New(),
		Name:     name,
		Slug:     slug,
		AuthorID: uuid.New(),
		Location: entity.NewLocation(-79.3832, 43.6532, "1 Front St"),
	}
}
