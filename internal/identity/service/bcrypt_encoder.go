package service

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/allisson/idvalues/internal/errors"
	"github.com/allisson/idvalues/internal/identity/domain"
)

// bcryptEncoder implements domain.PasswordEncoder using bcrypt. Plaintexts over
// 72 bytes are rejected by bcrypt, which only happens for 20-character
// passwords made mostly of multi-byte characters.
type bcryptEncoder struct {
	cost int
}

// NewBcryptEncoder creates a bcrypt encoder. Costs outside bcrypt's accepted
// range are rejected.
func NewBcryptEncoder(cost int) (domain.PasswordEncoder, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, apperrors.Wrapf(
			apperrors.ErrInvalidInput,
			"invalid bcrypt cost %d (valid range: %d-%d)",
			cost, bcrypt.MinCost, bcrypt.MaxCost,
		)
	}
	return &bcryptEncoder{cost: cost}, nil
}

// Encode hashes plain with a random salt.
func (e *bcryptEncoder) Encode(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), e.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

// Verify compares plain with the stored bcrypt hash.
func (e *bcryptEncoder) Verify(plain, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plain)) == nil
}
