package commands

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/allisson/idvalues/internal/errors"
	"github.com/allisson/idvalues/internal/identity/domain"
	identityUseCase "github.com/allisson/idvalues/internal/identity/usecase"
)

// RunHashPassword validates a password and prints its encoded form. When plain
// is empty the password is read from io.Reader.
func RunHashPassword(
	ctx context.Context,
	useCase identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	io IOTuple,
	plain string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	plain, err := readSecret(io, plain, "Password")
	if err != nil {
		return err
	}

	password, err := useCase.HashPassword(ctx, plain)
	if err != nil {
		var validationErr *domain.ValidationError
		if !apperrors.As(err, &validationErr) {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if format == "json" {
			writeJSON(io.Writer, map[string]string{"code": validationErr.Code, "message": validationErr.Message})
		} else {
			_, _ = fmt.Fprintln(io.Writer, validationErr.Message)
		}
		return ErrValidationFailed
	}

	if format == "json" {
		writeJSON(io.Writer, map[string]string{"encoded": password.EncodedForm()})
	} else {
		_, _ = fmt.Fprintln(io.Writer, password.EncodedForm())
	}

	logger.Debug("password hashed", slog.Any("password", password))
	return nil
}

// RunVerifyPassword checks a plaintext against an encoded form. A mismatch
// returns ErrValidationFailed. When plain is empty it is read from io.Reader.
func RunVerifyPassword(
	ctx context.Context,
	useCase identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	io IOTuple,
	plain string,
	encoded string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	plain, err := readSecret(io, plain, "Password")
	if err != nil {
		return err
	}

	ok, err := useCase.VerifyPassword(ctx, &domain.VerifyPasswordInput{Plain: plain, Encoded: encoded})
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}

	if format == "json" {
		writeJSON(io.Writer, map[string]bool{"match": ok})
	} else if ok {
		_, _ = fmt.Fprintln(io.Writer, "Password matches")
	} else {
		_, _ = fmt.Fprintln(io.Writer, "Password does not match")
	}

	logger.Debug("password verified", slog.Bool("match", ok))

	if !ok {
		return ErrValidationFailed
	}
	return nil
}
