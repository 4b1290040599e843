package auth

import "context"

// TokenGenerator abstracts session token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

// PasswordHasher abstracts the one-way credential transform.
// Verify reports whether plaintext matches digest; it never errors on a
// plain mismatch.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
