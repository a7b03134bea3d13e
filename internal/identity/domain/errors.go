package domain

import (
	apperrors "github.com/allisson/idvalues/internal/errors"
)

// ValidationError is the single failure kind returned by every value object
// constructor. Message is stable wording meant to be shown to end users.
type ValidationError struct {
	// Field names the value object that rejected the input ("cpf", "email", ...).
	Field string
	// Code is a machine readable identifier of the failed rule.
	Code string
	// Message is the human readable description of the failed rule.
	Message string
}

// Error returns the rule message verbatim.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap ties every validation failure to the generic invalid input error.
func (e *ValidationError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

func newValidationError(field FieldKind, code, message string) *ValidationError {
	return &ValidationError{Field: string(field), Code: code, Message: message}
}

// CPF validation errors, in evaluation order.
var (
	ErrCPFLength         = newValidationError(FieldCPF, "cpf_length", "CPF must have 11 digits")
	ErrCPFNotNumeric     = newValidationError(FieldCPF, "cpf_numeric", "CPF must contain only numbers")
	ErrCPFRepeatedDigits = newValidationError(FieldCPF, "cpf_repeated_digits", "CPF cannot be a sequence of the same digit")
	ErrCPFCheckDigits    = newValidationError(FieldCPF, "cpf_check_digits", "Invalid CPF check digits")

	// ErrCPFPrefixLength is returned when check digits are requested for fewer than 9 digits.
	ErrCPFPrefixLength = newValidationError(FieldCPF, "cpf_prefix_length", "CPF prefix must have 9 digits")
)

// Email validation errors, in evaluation order.
var (
	ErrEmailEmpty   = newValidationError(FieldEmail, "email_empty", "Email must not be empty")
	ErrEmailTooLong = newValidationError(FieldEmail, "email_too_long", "Email must not exceed 254 characters")
	ErrEmailFormat  = newValidationError(FieldEmail, "email_format", "Invalid email address format")
)

// Username validation errors, in evaluation order.
var (
	ErrUsernameTooShort = newValidationError(
		FieldUsername, "username_too_short", "Username must be at least 3 characters long",
	)
	ErrUsernameTooLong = newValidationError(
		FieldUsername, "username_too_long", "Username must not exceed 16 characters",
	)
	ErrUsernameCharset = newValidationError(
		FieldUsername, "username_charset", "Username can only contain letters and numbers",
	)
)

// Password validation errors, in evaluation order.
var (
	ErrPasswordTooShort = newValidationError(
		FieldPassword, "password_too_short", "Password must be at least 8 characters long",
	)
	ErrPasswordTooLong = newValidationError(
		FieldPassword, "password_too_long", "Password must not exceed 20 characters",
	)
	ErrPasswordNoLetter = newValidationError(
		FieldPassword, "password_letter", "Password must contain at least one letter",
	)
	ErrPasswordNoNumber = newValidationError(
		FieldPassword, "password_number", "Password must contain at least one number",
	)
	ErrPasswordNoSymbol = newValidationError(
		FieldPassword, "password_symbol", "Password must contain at least one symbol",
	)
)

// ErrPasswordEncoderRequired is returned when a password is built without an encoder.
var ErrPasswordEncoderRequired = apperrors.New("password encoder is required")
