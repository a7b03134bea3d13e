// Package validation provides jellydator/validation rules for the identity
// value objects, so multi-field inputs can report every failing field at once
// with the same messages the value object constructors return.
package validation

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/idvalues/internal/errors"
	"github.com/allisson/idvalues/internal/identity/domain"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput while
// keeping the original errors reachable through errors.As.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
}

// pipelineRule sanitizes the value and runs the domain validator on the result.
func pipelineRule(sanitize func(string) string, validate func(string) error) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_string_type", "must be a string")
		}
		return toRuleError(validate(sanitize(s)))
	})
}

// toRuleError converts a domain validation error into a jellydator error that
// keeps the rule code and message.
func toRuleError(err error) error {
	if err == nil {
		return nil
	}
	var validationErr *domain.ValidationError
	if apperrors.As(err, &validationErr) {
		return validation.NewError(validationErr.Code, validationErr.Message)
	}
	return err
}

// CPF validates raw CPF input through domain.SanitizeCPF and domain.ValidateCPF.
var CPF = pipelineRule(domain.SanitizeCPF, domain.ValidateCPF)

// Email validates raw email input through domain.SanitizeEmail and domain.ValidateEmail.
var Email = pipelineRule(domain.SanitizeEmail, domain.ValidateEmail)

// Username validates raw username input through domain.SanitizeUsername and domain.ValidateUsername.
var Username = pipelineRule(domain.SanitizeUsername, domain.ValidateUsername)

// Password validates raw password input through domain.SanitizePassword and domain.ValidatePassword.
var Password = pipelineRule(domain.SanitizePassword, domain.ValidatePassword)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
