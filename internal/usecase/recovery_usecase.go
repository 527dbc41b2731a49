package usecase

import (
	"context"
	"time"

	"delicious/internal/domain/entity"
)

// RequestResetOutput reports whether a reset was issued. Callers must not
// reveal AccountFound to the requester.
type RequestResetOutput struct {
	AccountFound bool
}

// ConsumeTokenOutput is the updated user and a fresh session.
type ConsumeTokenOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// RecoveryUsecase is the password reset lifecycle: issue, validate, consume.
type RecoveryUsecase interface {
	// RequestReset issues a time-bounded token for email and mails the reset link.
	RequestReset(ctx context.Context, email string) (*RequestResetOutput, error)

	// ValidateToken returns the holder of a token that is set and not expired.
	ValidateToken(ctx context.Context, token string) (*entity.User, error)

	// ConsumeToken sets a new password and voids the token. At most one call per token succeeds.
	ConsumeToken(ctx context.Context, token, newPassword string) (*ConsumeTokenOutput, error)
}
