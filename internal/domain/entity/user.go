// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"crypto/md5" //nolint:gosec // gravatar addresses are md5 of the email by definition
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

const gravatarSize = "200"

// User is an account that can author stores and reviews.
type User struct {
	ID                  uuid.UUID
	Email               string // Lower-cased, unique
	Name                string
	PasswordHash        string
	ResetToken          *string    // Set together with ResetTokenExpiresAt
	ResetTokenExpiresAt *time.Time // Token is void once this is in the past
	FavoriteStoreIDs    []uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NormalizeEmail lower-cases and trims an address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasPendingReset reports whether a reset token is set and not yet expired at now.
func (u *User) HasPendingReset(now time.Time) bool {
	return u.ResetToken != nil && u.ResetTokenExpiresAt != nil && u.ResetTokenExpiresAt.After(now)
}

// HasFavorite reports whether storeID is among the user's hearts.
func (u *User) HasFavorite(storeID uuid.UUID) bool {
	for _, id := range u.FavoriteStoreIDs {
		if id == storeID {
			return true
		}
	}

	return false
}

// GravatarURL returns the avatar address derived from the email.
func (u *User) GravatarURL() string {
	sum := md5.Sum([]byte(NormalizeEmail(u.Email))) //nolint:gosec

	return "https://gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=" + gravatarSize
}
