package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "delicious/internal/delivery/context"
	"delicious/internal/domain/entity"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/repository"
	"delicious/internal/domain/service"
	"delicious/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	storeRepo    repository.StoreRepository
	reviewRepo   repository.ReviewRepository
	credentials  service.CredentialStore
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	StoreRepo    repository.StoreRepository
	ReviewRepo   repository.ReviewRepository
	Credentials  service.CredentialStore
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		storeRepo:    params.StoreRepo,
		reviewRepo:   params.ReviewRepo,
		credentials:  params.Credentials,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and signs the user in.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)
	if name == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and email are required")
	}

	if err := srv.credentials.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hash, err := srv.credentials.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		ID:               uuid.New(),
		Email:            email,
		Name:             name,
		PasswordHash:     hash,
		FavoriteStoreIDs: []uuid.UUID{},
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return srv.issueSession(user)
}

// Login checks the password. Unknown email and wrong password are indistinguishable.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	// bcrypt is CPU-bound; nothing else runs until it returns.
	if !srv.credentials.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Any("userID", user.ID), slog.String("reason", "wrong password"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return srv.issueSession(user)
}

func (srv *accountService) issueSession(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{User: user, AccessToken: token, ExpiresAt: expiresAt}, nil
}

func (srv *accountService) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to load account")
	}

	return user, nil
}

func (srv *accountService) UpdateAccount(ctx context.Context, input *usecase.UpdateAccountInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)
	if name == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and email are required")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to load account")
	}

	user.Name = name
	user.Email = email
	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to update account")
	}

	srv.log(ctx).Info("Account updated", slog.Any("userID", user.ID))

	return user, nil
}

// ToggleHeart requires the store to exist.
func (srv *accountService) ToggleHeart(ctx context.Context, userID, storeID uuid.UUID) (bool, error) {
	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		return false, errors.Wrap(mapNotFound(err), "failed to load store")
	}

	hearted, err := srv.userRepo.ToggleFavorite(ctx, userID, storeID)
	if err != nil {
		return false, errors.Wrap(err, "failed to toggle heart")
	}

	srv.log(ctx).Debug("Heart toggled", slog.Any("storeID", storeID), slog.Bool("hearted", hearted))

	return hearted, nil
}

func (srv *accountService) Hearts(ctx context.Context, userID uuid.UUID) ([]*entity.Store, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to load account")
	}

	stores, err := srv.storeRepo.FindByIDs(ctx, user.FavoriteStoreIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load hearted stores")
	}

	if err := enrichWithReviews(ctx, srv.reviewRepo, stores...); err != nil {
		return nil, err
	}

	return stores, nil
}
