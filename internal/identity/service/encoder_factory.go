package service

import (
	apperrors "github.com/allisson/idvalues/internal/errors"
	"github.com/allisson/idvalues/internal/identity/domain"
)

// Encoder kinds accepted by NewPasswordEncoder.
const (
	EncoderArgon2id = "argon2id"
	EncoderBcrypt   = "bcrypt"
	EncoderLegacy   = "legacy"
)

// Argon2id policies accepted by NewArgon2idEncoder.
const (
	PolicyInteractive = "interactive"
	PolicyModerate    = "moderate"
)

// EncoderOptions configures NewPasswordEncoder.
type EncoderOptions struct {
	Kind       string
	Policy     string
	BcryptCost int
}

// NewPasswordEncoder creates a password encoder based on the requested kind.
func NewPasswordEncoder(opts EncoderOptions) (domain.PasswordEncoder, error) {
	switch opts.Kind {
	case EncoderArgon2id, "":
		return NewArgon2idEncoder(opts.Policy)
	case EncoderBcrypt:
		return NewBcryptEncoder(opts.BcryptCost)
	case EncoderLegacy:
		return NewLegacyEncoder(), nil
	default:
		return nil, apperrors.Wrapf(
			apperrors.ErrInvalidInput,
			"invalid password encoder %q (valid options: argon2id, bcrypt, legacy)",
			opts.Kind,
		)
	}
}
