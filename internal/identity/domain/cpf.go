package domain

import (
	"strings"
)

// CPF is a validated Brazilian individual taxpayer number. The stored value is
// always 11 decimal digits with matching check digits.
type CPF struct {
	value string
}

// NewCPF sanitizes raw input and returns a CPF when the result is valid.
func NewCPF(raw string) (*CPF, error) {
	candidate := SanitizeCPF(raw)
	if err := ValidateCPF(candidate); err != nil {
		return nil, err
	}
	return &CPF{value: candidate}, nil
}

// SanitizeCPF removes every non-digit character and keeps at most 11 digits.
func SanitizeCPF(raw string) string {
	var b strings.Builder
	b.Grow(CPFLength)
	for i := 0; i < len(raw) && b.Len() < CPFLength; i++ {
		if isDigit(raw[i]) {
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// ValidateCPF checks a sanitized candidate. Rules are evaluated in order and
// the first failure is returned: length, digits only, repeated digit, check digits.
func ValidateCPF(candidate string) error {
	if len(candidate) != CPFLength {
		return ErrCPFLength
	}
	for i := 0; i < len(candidate); i++ {
		if !isDigit(candidate[i]) {
			return ErrCPFNotNumeric
		}
	}
	if strings.Count(candidate, candidate[:1]) == CPFLength {
		return ErrCPFRepeatedDigits
	}
	if cpfCheckDigit(candidate, 9) != int(candidate[9]-'0') ||
		cpfCheckDigit(candidate, 10) != int(candidate[10]-'0') {
		return ErrCPFCheckDigits
	}
	return nil
}

// CPFCheckDigits returns the two check digits for the first 9 digits of prefix.
// Non-digit characters are ignored, as in SanitizeCPF.
func CPFCheckDigits(prefix string) (string, error) {
	digits := SanitizeCPF(prefix)
	if len(digits) < CPFPrefixLength {
		return "", ErrCPFPrefixLength
	}
	digits = digits[:CPFPrefixLength]

	first := byte('0' + cpfCheckDigit(digits, 9))
	second := byte('0' + cpfCheckDigit(digits+string(first), 10))
	return string([]byte{first, second}), nil
}

// cpfCheckDigit computes the check digit for the first n digits using the
// weights n+1 down to 2.
func cpfCheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 {
		return 0
	}
	return remainder
}

// MaskCPF sanitizes raw input and punctuates whatever digits are present as
// "XXX.XXX.XXX-YY". It is meant for live input and accepts 0 to 11 digits.
func MaskCPF(raw string) string {
	digits := SanitizeCPF(raw)

	var b strings.Builder
	b.Grow(len(digits) + 3)
	for i := 0; i < len(digits); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// Value returns the 11 digits without punctuation.
func (c *CPF) Value() string {
	return c.value
}

// Format renders the CPF as "XXX.XXX.XXX-YY".
func (c *CPF) Format() string {
	return c.value[0:3] + "." + c.value[3:6] + "." + c.value[6:9] + "-" + c.value[9:11]
}

// String returns the formatted CPF.
func (c *CPF) String() string {
	return c.Format()
}

// Equal reports whether both CPFs hold the same digits.
func (c *CPF) Equal(other *CPF) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.value == other.value
}

// MarshalText implements encoding.TextMarshaler using the bare digits.
func (c CPF) MarshalText() ([]byte, error) {
	return []byte(c.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input goes through the
// full sanitize and validate pipeline.
func (c *CPF) UnmarshalText(text []byte) error {
	parsed, err := NewCPF(string(text))
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
