package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/idvalues/internal/errors"
	"github.com/allisson/idvalues/internal/identity/domain"
	identityUseCase "github.com/allisson/idvalues/internal/identity/usecase"
)

// RunRegister builds an identity from raw fields. Every rejected field is
// printed and ErrValidationFailed is returned. When the password is empty it is
// read from io.Reader.
func RunRegister(
	ctx context.Context,
	useCase identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	io IOTuple,
	input *domain.RegisterIdentityInput,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	password, err := readSecret(io, input.Password, "Password")
	if err != nil {
		return err
	}
	in := *input
	in.Password = password

	identity, err := useCase.Register(ctx, &in)
	if err != nil {
		fieldErrs, ok := registerFieldErrors(err)
		if !ok {
			return fmt.Errorf("failed to register identity: %w", err)
		}
		if format == "json" {
			writeJSON(io.Writer, map[string]any{"errors": fieldErrs})
		} else {
			outputFieldErrorsText(fieldErrs, io.Writer)
		}
		return ErrValidationFailed
	}

	if format == "json" {
		outputIdentityJSON(identity, io.Writer)
	} else {
		outputIdentityText(identity, io.Writer)
	}

	logger.Info("identity registered",
		slog.String("identity_id", identity.ID.String()),
		slog.String("cpf", cpfSuffix(identity.CPF.Value())),
		slog.String("email_domain", identity.Email.Domain()),
	)

	return nil
}

// registerFieldErrors flattens the per-field errors of a rejected registration.
func registerFieldErrors(err error) (map[string]string, bool) {
	var fieldErrs validation.Errors
	if apperrors.As(err, &fieldErrs) {
		out := make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			out[field] = fieldErr.Error()
		}
		return out, true
	}

	var validationErr *domain.ValidationError
	if apperrors.As(err, &validationErr) {
		return map[string]string{validationErr.Field: validationErr.Message}, true
	}
	return nil, false
}

// outputFieldErrorsText prints one "field: message" line per field, sorted by field.
func outputFieldErrorsText(fieldErrs map[string]string, writer io.Writer) {
	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		_, _ = fmt.Fprintf(writer, "%s: %s\n", field, fieldErrs[field])
	}
}

// outputIdentityText outputs the identity in human-readable text format.
func outputIdentityText(identity *domain.Identity, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "Identity registered successfully!")
	_, _ = fmt.Fprintf(writer, "ID: %s\n", identity.ID.String())
	_, _ = fmt.Fprintf(writer, "CPF: %s\n", identity.CPF.Format())
	_, _ = fmt.Fprintf(writer, "Email: %s\n", identity.Email.Value())
	_, _ = fmt.Fprintf(writer, "Username: %s\n", identity.Username.Value())
	_, _ = fmt.Fprintf(writer, "Password: %s\n", identity.Password.EncodedForm())
	_, _ = fmt.Fprintf(writer, "Created At: %s\n", identity.CreatedAt.Format(time.RFC3339))
}

// outputIdentityJSON outputs the identity in JSON format for machine consumption.
func outputIdentityJSON(identity *domain.Identity, writer io.Writer) {
	writeJSON(writer, map[string]string{
		"id":         identity.ID.String(),
		"cpf":        identity.CPF.Value(),
		"email":      identity.Email.Value(),
		"username":   identity.Username.Value(),
		"password":   identity.Password.EncodedForm(),
		"created_at": identity.CreatedAt.Format(time.RFC3339),
	})
}
