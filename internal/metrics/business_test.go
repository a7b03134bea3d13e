package metrics

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the exposition output contains a metric
// matching the given name, partial label pattern and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	assert.NotPanics(t, func() {
		ctx := context.Background()
		noOpMetrics.RecordOperation(ctx, "identity", "field_check", "success")
		noOpMetrics.RecordDuration(ctx, "identity", "field_check", time.Millisecond, "success")
		noOpMetrics.RecordRejection(ctx, "cpf", "cpf_length")
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "identity", "identity_register", "success")
	bm.RecordOperation(ctx, "identity", "identity_register", "success")
	bm.RecordOperation(ctx, "identity", "identity_register", "error")
	bm.RecordOperation(ctx, "identity", "field_check", "invalid")

	bm.RecordDuration(ctx, "identity", "identity_register", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "identity", "identity_register", 60*time.Millisecond, "success")

	bm.RecordRejection(ctx, "cpf", "cpf_check_digits")
	bm.RecordRejection(ctx, "cpf", "cpf_check_digits")
	bm.RecordRejection(ctx, "email", "email_format")

	var out bytes.Buffer
	require.NoError(t, provider.WriteText(&out))
	output := out.String()

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`operation="identity_register".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`operation="identity_register".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`operation="field_check".*status="invalid"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`operation="identity_register".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_validation_rejections_total`,
		`code="cpf_check_digits".*field="cpf"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_validation_rejections_total`,
		`code="email_format".*field="email"`,
		`1`,
	)
}
