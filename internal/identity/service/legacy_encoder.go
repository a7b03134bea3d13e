package service

import (
	"crypto/subtle"
	"encoding/base64"

	"github.com/allisson/idvalues/internal/identity/domain"
	"github.com/allisson/idvalues/internal/validation"
)

// legacyEncoder reproduces the reversible base64 encoding used by the first
// version of the system. It is deterministic and offers no protection; it is
// only kept so that stored forms produced by that version can still be verified.
type legacyEncoder struct{}

// NewLegacyEncoder creates the base64 placeholder encoder.
func NewLegacyEncoder() domain.PasswordEncoder {
	return &legacyEncoder{}
}

// Encode returns the standard base64 encoding of the UTF-8 bytes of plain.
func (e *legacyEncoder) Encode(plain string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(plain)), nil
}

// Verify re-encodes plain and compares both forms in constant time.
func (e *legacyEncoder) Verify(plain, encoded string) bool {
	if err := validation.Base64.Validate(encoded); err != nil {
		return false
	}
	candidate, _ := e.Encode(plain)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(encoded)) == 1
}
