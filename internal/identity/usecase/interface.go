// Package usecase defines business logic for building and checking identities
// out of raw user input.
package usecase

import (
	"context"

	"github.com/allisson/idvalues/internal/identity/domain"
)

// IdentityUseCase orchestrates the identity value objects for callers such as
// the CLI.
type IdentityUseCase interface {
	// Register validates every field of input, reporting all failing fields at
	// once, and builds an Identity whose password holds only its encoded form.
	Register(ctx context.Context, input *domain.RegisterIdentityInput) (*domain.Identity, error)

	// Check runs a single raw value through the pipeline of kind. A rejected
	// value is not an error: it yields a result with Valid false and the rule
	// message. Errors are returned only for an unknown kind.
	Check(ctx context.Context, kind domain.FieldKind, raw string) (*domain.CheckResult, error)

	// CheckBatch checks every raw value concurrently and returns the results in
	// input order. It stops early when ctx is cancelled.
	CheckBatch(ctx context.Context, kind domain.FieldKind, raws []string) ([]*domain.CheckResult, error)

	// HashPassword validates raw and returns the password value object.
	HashPassword(ctx context.Context, raw string) (*domain.Password, error)

	// VerifyPassword reports whether the plaintext matches the encoded form.
	// Complexity rules are not applied to the plaintext.
	VerifyPassword(ctx context.Context, input *domain.VerifyPasswordInput) (bool, error)
}
