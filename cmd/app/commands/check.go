package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/idvalues/internal/identity/domain"
	identityUseCase "github.com/allisson/idvalues/internal/identity/usecase"
)

// RunCheck runs one raw value through the pipeline of kind and prints the
// outcome. A rejected value prints its message and returns ErrValidationFailed.
func RunCheck(
	ctx context.Context,
	useCase identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	writer io.Writer,
	kind domain.FieldKind,
	raw string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	result, err := useCase.Check(ctx, kind, raw)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", kind, err)
	}

	if format == "json" {
		writeJSON(writer, result)
	} else {
		outputCheckText(result, writer)
	}

	logger.Debug("value checked",
		slog.String("kind", string(kind)),
		slog.Bool("valid", result.Valid),
		slog.String("code", result.Code),
	)

	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}

// outputCheckText outputs a check result in human-readable text format.
func outputCheckText(result *domain.CheckResult, writer io.Writer) {
	if !result.Valid {
		_, _ = fmt.Fprintln(writer, result.Message)
		return
	}
	if result.Kind == domain.FieldPassword {
		_, _ = fmt.Fprintln(writer, "Password is valid")
		return
	}
	_, _ = fmt.Fprintln(writer, result.Sanitized)
}
