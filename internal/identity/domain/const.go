// Package domain defines the identity value objects: CPF, Email, Username and
// Password. Every value object follows the same pipeline: Sanitize never fails,
// Validate reports the first broken rule, and the New constructor only returns
// an instance when the sanitized candidate is valid. Instances are immutable and
// safe to share between goroutines.
package domain

import (
	"fmt"

	apperrors "github.com/allisson/idvalues/internal/errors"
)

// FieldKind identifies one of the identity value objects.
type FieldKind string

const (
	FieldCPF      FieldKind = "cpf"
	FieldEmail    FieldKind = "email"
	FieldUsername FieldKind = "username"
	FieldPassword FieldKind = "password"
)

// Length limits enforced by the value objects.
const (
	CPFLength = 11

	// CPFPrefixLength is the number of base digits preceding the two check digits.
	CPFPrefixLength = 9

	// EmailMaxLength is the technical limit for an address (RFC 5321 path limit minus brackets).
	EmailMaxLength = 254

	UsernameMinLength = 3
	UsernameMaxLength = 16

	PasswordMinLength = 8
	PasswordMaxLength = 20
)

// Validate checks if the field kind is known.
func (k FieldKind) Validate() error {
	switch k {
	case FieldCPF, FieldEmail, FieldUsername, FieldPassword:
		return nil
	default:
		return fmt.Errorf(
			"%w: unknown field kind %q (valid options: cpf, email, username, password)",
			apperrors.ErrInvalidInput,
			string(k),
		)
	}
}
