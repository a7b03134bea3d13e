// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrValidationFailed is returned after a command has printed a rejected value.
// The caller exits with a non-zero status without printing anything else.
var ErrValidationFailed = errors.New("validation failed")

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// validateFormat checks the --format flag value.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// writeJSON outputs v as indented JSON for machine consumption.
func writeJSON(writer io.Writer, v any) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}

// readSecret returns value when set, otherwise reads it with ReadSecret.
func readSecret(io IOTuple, value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	return ReadSecret(io, prompt)
}

// ReadSecret prompts on the writer and reads one line from the reader.
func ReadSecret(io IOTuple, prompt string) (string, error) {
	if io.Reader == nil {
		return "", fmt.Errorf("%s is required", strings.ToLower(prompt))
	}

	_, _ = fmt.Fprintf(io.Writer, "%s: ", prompt)
	line, err := bufio.NewReader(io.Reader).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(prompt), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// cpfSuffix keeps only the last two digits of a sanitized CPF for logging.
func cpfSuffix(digits string) string {
	if len(digits) < 2 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-2) + digits[len(digits)-2:]
}

// passwordMask renders one asterisk per character.
func passwordMask(plain string) string {
	return strings.Repeat("*", utf8.RuneCountInString(plain))
}
