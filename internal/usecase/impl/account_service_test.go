package impl

import (
	"context"
	"testing"
	"time"

	"delicious/internal/domain/entity"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/repository"
	mockRepo "delicious/internal/mocks/repository"
	mockSvc "delicious/internal/mocks/service"
	"delicious/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	userRepo     *mockRepo.MockUserRepository
	storeRepo    *mockRepo.MockStoreRepository
	reviewRepo   *mockRepo.MockReviewRepository
	credentials  *mockSvc.MockCredentialStore
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) (usecase.AccountUsecase, *accountFixture) {
	t.Helper()

	fx := &accountFixture{
		userRepo:     mockRepo.NewMockUserRepository(t),
		storeRepo:    mockRepo.NewMockStoreRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		credentials:  mockSvc.NewMockCredentialStore(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	svc := NewAccountService(AccountServiceParams{
		UserRepo:     fx.userRepo,
		StoreRepo:    fx.storeRepo,
		ReviewRepo:   fx.reviewRepo,
		Credentials:  fx.credentials,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	})

	return svc, fx
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	t.Run("creates the account and signs in", func(t *testing.T) {
		svc, fx := createTestAccountService(t)

		fx.credentials.EXPECT().ValidatePasswordStrength("s3cretpass").Return(nil).Once()
		fx.credentials.EXPECT().Hash("s3cretpass").Return("hashed", nil).Once()
		fx.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ada@example.com" && u.Name == "Ada" && u.PasswordHash == "hashed"
		})).Return(nil).Once()
		fx.tokenService.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID")).Return("jwt", expiresAt, nil).Once()

		out, err := svc.Register(ctx, &usecase.RegisterInput{Name: " Ada ", Email: "ADA@example.com", Password: "s3cretpass"})

		require.NoError(t, err)
		assert.Equal(t, "jwt", out.AccessToken)
		assert.Equal(t, expiresAt, out.ExpiresAt)
		assert.Equal(t, "ada@example.com", out.User.Email)
		assert.NotEqual(t, uuid.Nil, out.User.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, fx := createTestAccountService(t)

		fx.credentials.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil).Once()
		fx.credentials.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists).Once()

		_, err := svc.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "s3cretpass"})

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
		fx.tokenService.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
	})

	t.Run("weak password", func(t *testing.T) {
		svc, fx := createTestAccountService(t)

		fx.credentials.EXPECT().ValidatePasswordStrength("abc").
			Return(domainerrors.ErrPasswordStrength.WithDetails("too short")).Once()

		_, err := svc.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "abc"})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
		fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing name", func(t *testing.T) {
		svc, _ := createTestAccountService(t)

		_, err := svc.Register(ctx, &usecase.RegisterInput{Email: "ada@example.com", Password: "s3cretpass"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed"}

	t.Run("correct password", func(t *testing.T) {
		svc, fx := createTestAccountService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil).Once()
		fx.credentials.EXPECT().Check("s3cretpass", "hashed").Return(true).Once()
		fx.tokenService.EXPECT().GenerateAccessToken(user.ID).Return("jwt", time.Now(), nil).Once()

		out, err := svc.Login(ctx, &usecase.LoginInput{Email: " Ada@example.com", Password: "s3cretpass"})

		require.NoError(t, err)
		assert.Equal(t, user, out.User)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		svc, fx := createTestAccountService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil).Once()
		fx.credentials.EXPECT().Check("nope", "hashed").Return(false).Once()
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Once()

		_, wrongPassword := svc.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "nope"})
		_, unknownEmail := svc.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "nope"})

		assert.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})
}

func TestAccountService_UpdateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("changes name and email", func(t *testing.T) {
		svc, fx := createTestAccountService(t)
		user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()
		fx.userRepo.EXPECT().UpdateProfile(ctx, user).Return(nil).Once()

		got, err := svc.UpdateAccount(ctx, &usecase.UpdateAccountInput{UserID: user.ID, Name: "Ada L", Email: "LOVELACE@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "Ada L", got.Name)
		assert.Equal(t, "lovelace@example.com", got.Email)
	})

	t.Run("email taken by another account", func(t *testing.T) {
		svc, fx := createTestAccountService(t)
		user := &entity.User{ID: uuid.New()}

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()
		fx.userRepo.EXPECT().UpdateProfile(ctx, user).Return(domainerrors.ErrUserAlreadyExists).Once()

		_, err := svc.UpdateAccount(ctx, &usecase.UpdateAccountInput{UserID: user.ID, Name: "Ada", Email: "taken@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestAccountService_ToggleHeart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	t.Run("toggles an existing store", func(t *testing.T) {
		svc, fx := createTestAccountService(t)

		fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID}, nil).Once()
		fx.userRepo.EXPECT().ToggleFavorite(ctx, userID, storeID).Return(true, nil).Once()

		hearted, err := svc.ToggleHeart(ctx, userID, storeID)

		require.NoError(t, err)
		assert.True(t, hearted)
	})

	t.Run("unknown store", func(t *testing.T) {
		svc, fx := createTestAccountService(t)

		fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound).Once()

		_, err := svc.ToggleHeart(ctx, userID, storeID)

		assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
		fx.userRepo.AssertNotCalled(t, "ToggleFavorite", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAccountService_Hearts(t *testing.T) {
	ctx := context.Background()
	svc, fx := createTestAccountService(t)
	store := &entity.Store{ID: uuid.New(), Name: "A"}
	user := &entity.User{ID: uuid.New(), FavoriteStoreIDs: []uuid.UUID{store.ID}}
	review := &entity.Review{ID: uuid.New(), StoreID: store.ID, Rating: 5}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()
	fx.storeRepo.EXPECT().FindByIDs(ctx, user.FavoriteStoreIDs).Return([]*entity.Store{store}, nil).Once()
	fx.reviewRepo.EXPECT().FindByStoreIDs(ctx, []uuid.UUID{store.ID}).Return([]*entity.Review{review}, nil).Once()

	stores, err := svc.Hearts(ctx, user.ID)

	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, []*entity.Review{review}, stores[0].Reviews)
}
