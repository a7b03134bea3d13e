package commands

import (
	"fmt"
	"io"
	"log/slog"

	apperrors "github.com/allisson/idvalues/internal/errors"
	"github.com/allisson/idvalues/internal/identity/domain"
	identityService "github.com/allisson/idvalues/internal/identity/service"
)

// RunFormatCPF prints a valid CPF in "XXX.XXX.XXX-YY" form.
func RunFormatCPF(writer io.Writer, raw string, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	cpf, err := domain.NewCPF(raw)
	if err != nil {
		var validationErr *domain.ValidationError
		if !apperrors.As(err, &validationErr) {
			return err
		}
		if format == "json" {
			writeJSON(writer, map[string]string{"code": validationErr.Code, "message": validationErr.Message})
		} else {
			_, _ = fmt.Fprintln(writer, validationErr.Message)
		}
		return ErrValidationFailed
	}

	if format == "json" {
		writeJSON(writer, map[string]string{"cpf": cpf.Value(), "formatted": cpf.Format()})
	} else {
		_, _ = fmt.Fprintln(writer, cpf.Format())
	}
	return nil
}

// RunGenerateCPF prints count random valid CPFs.
func RunGenerateCPF(
	generator identityService.CPFGenerator,
	logger *slog.Logger,
	writer io.Writer,
	count int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be a positive number, got: %d", count)
	}

	type generated struct {
		CPF       string `json:"cpf"`
		Formatted string `json:"formatted"`
	}
	out := make([]generated, 0, count)

	for i := 0; i < count; i++ {
		digits, err := generator.Generate()
		if err != nil {
			return fmt.Errorf("failed to generate cpf: %w", err)
		}
		cpf, err := domain.NewCPF(digits)
		if err != nil {
			return fmt.Errorf("generated cpf is invalid: %w", err)
		}
		out = append(out, generated{CPF: cpf.Value(), Formatted: cpf.Format()})
	}

	if format == "json" {
		writeJSON(writer, out)
	} else {
		for _, g := range out {
			_, _ = fmt.Fprintln(writer, g.Formatted)
		}
	}

	logger.Debug("cpfs generated", slog.Int("count", count))
	return nil
}
