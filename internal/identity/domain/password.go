package domain

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PasswordEncoder derives the stored form of a password and checks plaintext
// candidates against it. Implementations live in the service package.
type PasswordEncoder interface {
	// Encode derives the stored form from a sanitized plaintext.
	Encode(plain string) (string, error)
	// Verify reports whether plain matches a previously encoded form.
	Verify(plain, encoded string) bool
}

const redactedPassword = "[REDACTED]"

// Password holds only the encoded form of a plaintext that met the complexity
// rules at construction time. The plaintext is never retained.
type Password struct {
	encoded string
}

// NewPassword sanitizes and validates raw, then encodes it once with encoder.
func NewPassword(raw string, encoder PasswordEncoder) (*Password, error) {
	if encoder == nil {
		return nil, ErrPasswordEncoderRequired
	}

	candidate := SanitizePassword(raw)
	if err := ValidatePassword(candidate); err != nil {
		return nil, err
	}

	encoded, err := encoder.Encode(candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to encode password: %w", err)
	}
	return &Password{encoded: encoded}, nil
}

// SanitizePassword trims surrounding whitespace and truncates to PasswordMaxLength
// characters. Whitespace exposed at the end by the truncation is trimmed as well so
// that sanitizing twice yields the same candidate.
func SanitizePassword(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) <= PasswordMaxLength {
		return trimmed
	}
	return strings.TrimRightFunc(string([]rune(trimmed)[:PasswordMaxLength]), unicode.IsSpace)
}

// ValidatePassword checks a sanitized plaintext. Rules are evaluated in order:
// minimum length, maximum length, a letter, a number, a symbol. Any character
// other than an ASCII letter or digit counts as a symbol, underscore included.
func ValidatePassword(candidate string) error {
	length := utf8.RuneCountInString(candidate)
	if length < PasswordMinLength {
		return ErrPasswordTooShort
	}
	if length > PasswordMaxLength {
		return ErrPasswordTooLong
	}

	var hasLetter, hasNumber, hasSymbol bool
	for _, r := range candidate {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasNumber = true
		default:
			hasSymbol = true
		}
	}

	if !hasLetter {
		return ErrPasswordNoLetter
	}
	if !hasNumber {
		return ErrPasswordNoNumber
	}
	if !hasSymbol {
		return ErrPasswordNoSymbol
	}
	return nil
}

// VerifyPassword sanitizes plain and checks it against encoded. Complexity rules
// are not applied, so passwords created under an older policy still verify.
func VerifyPassword(plain, encoded string, encoder PasswordEncoder) bool {
	if encoder == nil || encoded == "" {
		return false
	}
	return encoder.Verify(SanitizePassword(plain), encoded)
}

// EncodedForm returns the stored form of the password.
func (p *Password) EncodedForm() string {
	return p.encoded
}

// Matches reports whether plain corresponds to this password.
func (p *Password) Matches(plain string, encoder PasswordEncoder) bool {
	return VerifyPassword(plain, p.encoded, encoder)
}

// String never exposes the encoded form.
func (p *Password) String() string {
	return redactedPassword
}

// LogValue keeps the encoded form out of structured logs.
func (p *Password) LogValue() slog.Value {
	return slog.StringValue(redactedPassword)
}
