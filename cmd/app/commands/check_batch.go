package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/allisson/idvalues/internal/identity/domain"
	identityUseCase "github.com/allisson/idvalues/internal/identity/usecase"
)

// RunCheckBatch checks every line of the input concurrently and prints one
// result per line, in input order. It returns ErrValidationFailed when at least
// one line is rejected.
func RunCheckBatch(
	ctx context.Context,
	useCase identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	io IOTuple,
	kind domain.FieldKind,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	raws, err := readLines(io.Reader)
	if err != nil {
		return fmt.Errorf("failed to read values: %w", err)
	}

	logger.Info("checking values", slog.String("kind", string(kind)), slog.Int("count", len(raws)))

	results, err := useCase.CheckBatch(ctx, kind, raws)
	if err != nil {
		return fmt.Errorf("failed to check %s values: %w", kind, err)
	}

	if format == "json" {
		writeJSON(io.Writer, results)
	} else {
		outputBatchText(results, io.Writer)
	}

	rejected := 0
	for _, result := range results {
		if !result.Valid {
			rejected++
		}
	}

	logger.Info("batch check completed",
		slog.String("kind", string(kind)),
		slog.Int("count", len(results)),
		slog.Int("rejected", rejected),
	)

	if rejected > 0 {
		return ErrValidationFailed
	}
	return nil
}

// OpenInput opens path for reading, or returns stdin for "-".
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path) //nolint:gosec // user-supplied input file
}

// readLines returns every line of r without line terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// outputBatchText outputs batch results as an aligned table.
func outputBatchText(results []*domain.CheckResult, writer io.Writer) {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "LINE\tVALID\tVALUE\tMESSAGE")
	for i, result := range results {
		_, _ = fmt.Fprintf(tw, "%d\t%t\t%s\t%s\n", i+1, result.Valid, result.Masked, result.Message)
	}
	_ = tw.Flush()
}
