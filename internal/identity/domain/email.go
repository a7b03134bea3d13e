package domain

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern requires one "@" and at least one "." after it, with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a sanitized, structurally valid email address.
type Email struct {
	value string
}

// NewEmail sanitizes raw input and returns an Email when the result is valid.
func NewEmail(raw string) (*Email, error) {
	candidate := SanitizeEmail(raw)
	if err := ValidateEmail(candidate); err != nil {
		return nil, err
	}
	return &Email{value: candidate}, nil
}

// SanitizeEmail normalizes an address:
//   - removes whitespace and lowercases
//   - keeps only the first "@", joining the remaining parts into the domain
//   - truncates to EmailMaxLength characters
//   - drops every character outside [a-z0-9@._+-]
func SanitizeEmail(raw string) string {
	s := strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw))

	if local, domain, found := strings.Cut(s, "@"); found && strings.Contains(domain, "@") {
		s = local + "@" + strings.ReplaceAll(domain, "@", "")
	}

	if runes := []rune(s); len(runes) > EmailMaxLength {
		s = string(runes[:EmailMaxLength])
	}

	return strings.Map(func(r rune) rune {
		if isEmailRune(r) {
			return r
		}
		return -1
	}, s)
}

// ValidateEmail checks a sanitized candidate: not empty, not longer than
// EmailMaxLength, and shaped like local@domain.tld.
func ValidateEmail(candidate string) error {
	if candidate == "" {
		return ErrEmailEmpty
	}
	if len(candidate) > EmailMaxLength {
		return ErrEmailTooLong
	}
	if !emailPattern.MatchString(candidate) {
		return ErrEmailFormat
	}
	return nil
}

// MaskEmail returns the sanitized form of raw without validating it, for live
// input previews.
func MaskEmail(raw string) string {
	return SanitizeEmail(raw)
}

// Value returns the full address.
func (e *Email) Value() string {
	return e.value
}

// Domain returns the part after the "@".
func (e *Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// LocalPart returns the part before the "@".
func (e *Email) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// String returns the full address.
func (e *Email) String() string {
	return e.value
}

// Equal reports whether both emails hold the same address.
func (e *Email) Equal(other *Email) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler through NewEmail.
func (e *Email) UnmarshalText(text []byte) error {
	parsed, err := NewEmail(string(text))
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}

func isEmailRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '@', r == '.', r == '_', r == '+', r == '-':
		return true
	default:
		return false
	}
}
