package commands

import (
	"fmt"
	"io"

	"github.com/allisson/idvalues/internal/identity/domain"
)

// RunMask prints the display form of possibly incomplete input. It never
// rejects the value.
func RunMask(writer io.Writer, kind domain.FieldKind, raw string, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if err := kind.Validate(); err != nil {
		return err
	}

	var masked string
	switch kind {
	case domain.FieldCPF:
		masked = domain.MaskCPF(raw)
	case domain.FieldEmail:
		masked = domain.MaskEmail(raw)
	case domain.FieldUsername:
		masked = domain.MaskUsername(raw)
	case domain.FieldPassword:
		masked = passwordMask(domain.SanitizePassword(raw))
	}

	if format == "json" {
		writeJSON(writer, map[string]string{"kind": string(kind), "masked": masked})
	} else {
		_, _ = fmt.Fprintln(writer, masked)
	}
	return nil
}
