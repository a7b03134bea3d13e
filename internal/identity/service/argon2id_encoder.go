package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/idvalues/internal/errors"
	"github.com/allisson/idvalues/internal/identity/domain"
)

// argon2idEncoder implements domain.PasswordEncoder using Argon2id PHC strings.
type argon2idEncoder struct {
	hasher *pwdhash.PasswordHasher
}

// NewArgon2idEncoder creates an Argon2id encoder for the given policy
// ("interactive" or "moderate").
func NewArgon2idEncoder(policy string) (domain.PasswordEncoder, error) {
	var (
		hasher *pwdhash.PasswordHasher
		err    error
	)
	switch policy {
	case PolicyInteractive:
		hasher, err = pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	case PolicyModerate, "":
		hasher, err = pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	default:
		return nil, apperrors.Wrapf(
			apperrors.ErrInvalidInput,
			"invalid password hash policy %q (valid options: interactive, moderate)",
			policy,
		)
	}

	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create argon2id hasher")
	}
	return &argon2idEncoder{hasher: hasher}, nil
}

// Encode hashes plain with a random salt. Two calls never return the same string.
func (e *argon2idEncoder) Encode(plain string) (string, error) {
	encoded, err := e.hasher.Hash([]byte(plain))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return encoded, nil
}

// Verify performs a constant-time comparison between plain and the PHC string.
func (e *argon2idEncoder) Verify(plain, encoded string) bool {
	ok, err := e.hasher.Verify([]byte(plain), encoded)
	if err != nil {
		return false
	}
	return ok
}
