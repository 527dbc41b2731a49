// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialStore hashes and verifies passwords. It abstracts the
// algorithm (bcrypt) away from the use cases.
type CredentialStore interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that do not meet the configured policy.
	ValidatePasswordStrength(password string) error
}
