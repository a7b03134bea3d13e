package domain

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/idvalues/internal/errors"
)

func TestSanitizeCPF(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Success_Empty", input: "", expected: ""},
		{name: "Success_FormattedInput", input: "529.982.247-25", expected: "52998224725"},
		{name: "Success_LettersAndSpaces", input: " 529 abc 982\t247x25 ", expected: "52998224725"},
		{name: "Success_TruncatesExtraDigits", input: "5299822472599999", expected: "52998224725"},
		{name: "Success_PartialInput", input: "529.9", expected: "5299"},
		{name: "Success_NonASCIIDigitsDropped", input: "١٢٣529", expected: "529"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeCPF(tt.input))
		})
	}
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name        string
		candidate   string
		expectedErr error
	}{
		{name: "Success_ValidCPF", candidate: "52998224725"},
		{name: "Success_CheckDigitZero", candidate: "12345678909"},
		{name: "Success_BothCheckDigitsZero", candidate: "98765432100"},
		{name: "Error_Empty", candidate: "", expectedErr: ErrCPFLength},
		{name: "Error_TooShort", candidate: "5299822472", expectedErr: ErrCPFLength},
		{name: "Error_TooLong", candidate: "529982247250", expectedErr: ErrCPFLength},
		{name: "Error_NonNumeric", candidate: "5299822472a", expectedErr: ErrCPFNotNumeric},
		{name: "Error_RepeatedDigits", candidate: "11111111111", expectedErr: ErrCPFRepeatedDigits},
		{name: "Error_WrongFirstCheckDigit", candidate: "52998224735", expectedErr: ErrCPFCheckDigits},
		{name: "Error_WrongSecondCheckDigit", candidate: "52998224726", expectedErr: ErrCPFCheckDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCPF(tt.candidate)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestValidateCPF_RejectsEveryRepeatedDigitSequence(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		candidate := strings.Repeat(string(d), CPFLength)
		t.Run(candidate, func(t *testing.T) {
			// every one of these satisfies the checksum arithmetic
			digits, err := CPFCheckDigits(candidate[:CPFPrefixLength])
			require.NoError(t, err)
			require.Equal(t, candidate[CPFPrefixLength:], digits)

			err = ValidateCPF(candidate)
			assert.ErrorIs(t, err, ErrCPFRepeatedDigits)
			assert.Equal(t, "CPF cannot be a sequence of the same digit", err.Error())
		})
	}
}

func TestNewCPF(t *testing.T) {
	t.Run("Success_FromFormattedInput", func(t *testing.T) {
		cpf, err := NewCPF("529.982.247-25")
		require.NoError(t, err)
		assert.Equal(t, "52998224725", cpf.Value())
		assert.Equal(t, "529.982.247-25", cpf.Format())
		assert.Equal(t, "529.982.247-25", cpf.String())
	})

	t.Run("Success_ExtraDigitsDiscarded", func(t *testing.T) {
		cpf, err := NewCPF("52998224725123")
		require.NoError(t, err)
		assert.Equal(t, "52998224725", cpf.Value())
	})

	t.Run("Error_CarriesSpecificMessage", func(t *testing.T) {
		cpf, err := NewCPF("529.982.247-00")
		assert.Nil(t, cpf)
		require.Error(t, err)
		assert.Equal(t, "Invalid CPF check digits", err.Error())

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "cpf", validationErr.Field)
		assert.Equal(t, "cpf_check_digits", validationErr.Code)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_WrongLength", func(t *testing.T) {
		_, err := NewCPF("123")
		assert.ErrorIs(t, err, ErrCPFLength)
		assert.Equal(t, "CPF must have 11 digits", err.Error())
	})
}

func TestCPFCheckDigits(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		expected string
	}{
		{name: "Success_Plain", prefix: "529982247", expected: "25"},
		{name: "Success_Formatted", prefix: "111.444.777", expected: "35"},
		{name: "Success_RemainderTenBecomesZero", prefix: "123456789", expected: "09"},
		{name: "Success_ExtraDigitsIgnored", prefix: "93541134799", expected: "80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digits, err := CPFCheckDigits(tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, digits)
		})
	}

	t.Run("Error_ShortPrefix", func(t *testing.T) {
		_, err := CPFCheckDigits("12345678")
		assert.ErrorIs(t, err, ErrCPFPrefixLength)
	})
}

func TestCPFCheckDigits_RoundTripThroughNewCPF(t *testing.T) {
	prefixes := []string{"529982247", "111444777", "935411347", "000000001", "987654321", "314159265"}

	for _, prefix := range prefixes {
		t.Run(prefix, func(t *testing.T) {
			digits, err := CPFCheckDigits(prefix)
			require.NoError(t, err)

			cpf, err := NewCPF(prefix + digits)
			require.NoError(t, err)
			assert.Equal(t, prefix+digits, cpf.Value())
		})
	}
}

func TestCPF_FormatIsFixedWidth(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

	for _, raw := range []string{"52998224725", "11144477735", "12345678909", "00000000191", "98765432100"} {
		cpf, err := NewCPF(raw)
		require.NoError(t, err)

		formatted := cpf.Format()
		assert.Len(t, formatted, 14)
		assert.Regexp(t, pattern, formatted)
	}
}

func TestMaskCPF(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "1", expected: "1"},
		{input: "12", expected: "12"},
		{input: "123", expected: "123"},
		{input: "1234", expected: "123.4"},
		{input: "12345", expected: "123.45"},
		{input: "123456", expected: "123.456"},
		{input: "1234567", expected: "123.456.7"},
		{input: "12345678", expected: "123.456.78"},
		{input: "123456789", expected: "123.456.789"},
		{input: "1234567890", expected: "123.456.789-0"},
		{input: "12345678901", expected: "123.456.789-01"},
		{input: "123456789012345", expected: "123.456.789-01"},
		{input: "123.456.789-01", expected: "123.456.789-01"},
		{input: "abc", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.expected, MaskCPF(tt.input))
			})
		})
	}
}

func TestCPF_Equal(t *testing.T) {
	a, err := NewCPF("52998224725")
	require.NoError(t, err)
	b, err := NewCPF("529.982.247-25")
	require.NoError(t, err)
	c, err := NewCPF("11144477735")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestCPF_JSON(t *testing.T) {
	type payload struct {
		CPF CPF `json:"cpf"`
	}

	t.Run("Success_RoundTrip", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"cpf":"529.982.247-25"}`), &p))
		assert.Equal(t, "52998224725", p.CPF.Value())

		out, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"cpf":"52998224725"}`, string(out))
	})

	t.Run("Error_InvalidCPFRejected", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"cpf":"000.000.000-00"}`), &p)
		assert.ErrorIs(t, err, ErrCPFRepeatedDigits)
	})
}
