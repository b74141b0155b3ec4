// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}

// PasswordPolicy checks a new password against the configured strength rules.
type PasswordPolicy interface {
	// Validate returns the broken rules, or nil when the password is acceptable.
	Validate(password string) []string
}
