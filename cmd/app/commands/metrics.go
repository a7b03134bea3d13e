package commands

import (
	"fmt"
	"io"

	"github.com/allisson/idvalues/internal/metrics"
)

// RunDumpMetrics writes the collected metrics in Prometheus text format. It
// does nothing when provider is nil.
func RunDumpMetrics(provider *metrics.Provider, writer io.Writer) error {
	if provider == nil {
		return nil
	}
	if err := provider.WriteText(writer); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
