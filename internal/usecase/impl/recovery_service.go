package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"delicious/config"
	deliverycontext "delicious/internal/delivery/context"
	"delicious/internal/domain/constants"
	"delicious/internal/domain/entity"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/repository"
	"delicious/internal/domain/service"
	"delicious/internal/errors"
	"delicious/internal/usecase"
	"delicious/internal/util"

	"go.uber.org/fx"
)

const (
	// resetTokenBytes of entropy, hex encoded to twice as many characters.
	resetTokenBytes      = 20
	defaultResetTokenTTL = time.Hour
	resetSubject         = "Password Reset"
)

// recoveryService implements the RecoveryUsecase interface.
type recoveryService struct {
	userRepo     repository.UserRepository
	credentials  service.CredentialStore
	tokenService service.TokenService
	mailer       service.Mailer
	tokenTTL     time.Duration
	appHost      string
	clock        func() time.Time
	logger       *slog.Logger
}

// RecoveryServiceParams holds dependencies for RecoveryService, injected by Fx.
type RecoveryServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Credentials  service.CredentialStore
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRecoveryService is the constructor for recoveryService.
func NewRecoveryService(params RecoveryServiceParams) usecase.RecoveryUsecase {
	ttl := defaultResetTokenTTL
	if params.Config != nil && params.Config.Recovery != nil && params.Config.Recovery.TokenTTL > 0 {
		ttl = params.Config.Recovery.TokenTTL
	}

	return &recoveryService{
		userRepo:     params.UserRepo,
		credentials:  params.Credentials,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		tokenTTL:     ttl,
		appHost:      appHost(params.Config),
		clock:        time.Now,
		logger:       params.Logger,
	}
}

func (srv *recoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *recoveryService) now() time.Time {
	return srv.clock().UTC()
}

// RequestReset issues a token for a known email. An unknown email is not an
// error and leaves no trace, so callers cannot probe for accounts.
func (srv *recoveryService) RequestReset(ctx context.Context, email string) (*usecase.RequestResetOutput, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Password reset requested for unknown email")

		return &usecase.RequestResetOutput{AccountFound: false}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	token, err := newResetToken()
	if err != nil {
		return nil, err
	}
	expiresAt := srv.now().Add(srv.tokenTTL)

	if err := srv.userRepo.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to store reset token")
	}

	err = srv.mailer.Send(ctx, &service.MailMessage{
		To:           user.Email,
		Name:         user.Name,
		Subject:      resetSubject,
		TemplateName: constants.TemplatePasswordReset,
		Data: map[string]string{
			"resetURL":  srv.appHost + "/account/reset/" + token,
			"expiresIn": util.FormatDuration(srv.tokenTTL),
		},
	})
	if err != nil {
		// The token stays valid; the user can ask again.
		srv.log(ctx).Error("Failed to dispatch reset email", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Join(domainerrors.ErrNotificationDispatch.WrapMessage("failed to send reset email"), err)
	}

	srv.log(ctx).Info("Password reset issued", slog.Any("userID", user.ID), slog.Time("expiresAt", expiresAt))

	return &usecase.RequestResetOutput{AccountFound: true}, nil
}

// ValidateToken does not tell an unknown token from an expired one.
func (srv *recoveryService) ValidateToken(ctx context.Context, token string) (*entity.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrInvalidOrExpiredToken
	}

	user, err := srv.userRepo.FindByValidResetToken(ctx, token, srv.now())
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidOrExpiredToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate reset token")
	}

	return user, nil
}

// ConsumeToken re-validates at consumption time; the conditional update decides
// the winner when the same token is consumed concurrently.
func (srv *recoveryService) ConsumeToken(ctx context.Context, token, newPassword string) (*usecase.ConsumeTokenOutput, error) {
	user, err := srv.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := srv.credentials.ValidatePasswordStrength(newPassword); err != nil {
		return nil, err
	}

	hash, err := srv.credentials.Hash(newPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	updated, err := srv.userRepo.ConsumeResetToken(ctx, user.ID, strings.TrimSpace(token), hash, srv.now())
	if errors.Is(err, repository.ErrResetTokenRejected) {
		srv.log(ctx).Warn("Reset token rejected at consumption", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidOrExpiredToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume reset token")
	}

	accessToken, expiresAt, err := srv.tokenService.GenerateAccessToken(updated.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", updated.ID))

	return &usecase.ConsumeTokenOutput{
		User:        updated,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func newResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate reset token")
	}

	return hex.EncodeToString(buf), nil
}
