package domain

import (
	"strings"
)

// Username is a lowercase alphanumeric handle between 3 and 16 characters.
type Username struct {
	value string
}

// NewUsername sanitizes raw input and returns a Username when the result is valid.
func NewUsername(raw string) (*Username, error) {
	candidate := SanitizeUsername(raw)
	if err := ValidateUsername(candidate); err != nil {
		return nil, err
	}
	return &Username{value: candidate}, nil
}

// SanitizeUsername trims the input, keeps ASCII letters and digits only,
// lowercases and truncates to UsernameMaxLength.
func SanitizeUsername(raw string) string {
	trimmed := strings.TrimSpace(raw)

	var b strings.Builder
	b.Grow(UsernameMaxLength)
	for i := 0; i < len(trimmed) && b.Len() < UsernameMaxLength; i++ {
		c := trimmed[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		case c >= 'a' && c <= 'z', isDigit(c):
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ValidateUsername checks a sanitized candidate. The length ceiling and charset
// rules cannot fail after SanitizeUsername but still hold for direct callers.
func ValidateUsername(candidate string) error {
	if len(candidate) < UsernameMinLength {
		return ErrUsernameTooShort
	}
	if len(candidate) > UsernameMaxLength {
		return ErrUsernameTooLong
	}
	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		if !(c >= 'a' && c <= 'z') && !isDigit(c) {
			return ErrUsernameCharset
		}
	}
	return nil
}

// MaskUsername returns the sanitized form of raw without enforcing the minimum length.
func MaskUsername(raw string) string {
	return SanitizeUsername(raw)
}

// Value returns the username.
func (u *Username) Value() string {
	return u.value
}

// String returns the username.
func (u *Username) String() string {
	return u.value
}

// Equal reports whether both usernames are the same.
func (u *Username) Equal(other *Username) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (u Username) MarshalText() ([]byte, error) {
	return []byte(u.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler through NewUsername.
func (u *Username) UnmarshalText(text []byte) error {
	parsed, err := NewUsername(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
