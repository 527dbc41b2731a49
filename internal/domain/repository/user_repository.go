// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"delicious/internal/domain/entity"
	"delicious/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrResetTokenRejected is returned when a conditional token consumption matched no row.
	ErrResetTokenRejected = errors.New("reset token rejected")
)

// UserRepository defines the persistence operations on accounts.
type UserRepository interface {
	// FindByID retrieves a user with their favorite store ids.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile changes the name and email of a user.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// SetResetToken stores a token and its expiry in one statement.
	SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error

	// FindByValidResetToken returns the user holding token when it expires after now.
	FindByValidResetToken(ctx context.Context, token string, now time.Time) (*entity.User, error)

	// ConsumeResetToken sets the password hash and clears both reset fields in one
	// conditional statement. It returns ErrResetTokenRejected when the token no longer
	// matches or has expired at now.
	ConsumeResetToken(ctx context.Context, userID uuid.UUID, token, passwordHash string, now time.Time) (*entity.User, error)

	// ToggleFavorite adds storeID to the user's hearts, or removes it when present.
	// It reports whether the store is a favorite afterwards.
	ToggleFavorite(ctx context.Context, userID, storeID uuid.UUID) (bool, error)
}
