// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"delicious/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateAccountInput changes the profile of the calling user.
type UpdateAccountInput struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// --- Output DTOs ---

// AuthOutput carries a session for the user.
type AuthOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// AccountUsecase defines the account operations the delivery layer depends on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*entity.User, error)

	// ToggleHeart adds or removes a favorite store and reports whether it is hearted afterwards.
	ToggleHeart(ctx context.Context, userID, storeID uuid.UUID) (bool, error)

	// Hearts returns the favorite stores of the user with their reviews.
	Hearts(ctx context.Context, userID uuid.UUID) ([]*entity.Store, error)
}
