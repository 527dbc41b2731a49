// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"delicious/config"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt silently truncates input beyond this many bytes.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the CredentialStore interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Missing settings fall back to bcrypt.DefaultCost and an 8 character minimum.
func NewBcryptHasher(cfg *config.Config) service.CredentialStore {
	hasher := &bcryptHasher{
		cost:   bcrypt.DefaultCost,
		policy: config.PasswordStrengthConfig{MinLength: 8, MaxLength: bcryptMaxPasswordBytes},
	}
	if cfg == nil {
		return hasher
	}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		hasher.policy = *cfg.PasswordStrength
	}
	if hasher.policy.MaxLength <= 0 || hasher.policy.MaxLength > bcryptMaxPasswordBytes {
		hasher.policy.MaxLength = bcryptMaxPasswordBytes
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("failed to hash password: " + err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured policy and lists every unmet rule.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var problems []string
	if len([]rune(password)) < h.policy.MinLength {
		problems = append(problems, fmt.Sprintf("at least %d characters", h.policy.MinLength))
	}
	if len(password) > h.policy.MaxLength {
		problems = append(problems, fmt.Sprintf("at most %d bytes", h.policy.MaxLength))
	}
	if h.policy.RequireUppercase && !hasUpper {
		problems = append(problems, "an uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLower {
		problems = append(problems, "a lowercase letter")
	}
	if h.policy.RequireNumbers && !hasNumber {
		problems = append(problems, "a number")
	}
	if h.policy.RequireSpecial && !hasSpecial {
		problems = append(problems, "a special character")
	}

	if len(problems) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs " + strings.Join(problems, ", "))
	}

	return nil
}
