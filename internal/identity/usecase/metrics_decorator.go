package usecase

import (
	"context"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/idvalues/internal/errors"
	"github.com/allisson/idvalues/internal/identity/domain"
	"github.com/allisson/idvalues/internal/metrics"
)

const metricsDomain = "identity"

// identityUseCaseWithMetrics decorates IdentityUseCase with metrics instrumentation.
type identityUseCaseWithMetrics struct {
	next    IdentityUseCase
	metrics metrics.BusinessMetrics
}

// NewIdentityUseCaseWithMetrics wraps an IdentityUseCase with metrics recording.
func NewIdentityUseCaseWithMetrics(useCase IdentityUseCase, m metrics.BusinessMetrics) IdentityUseCase {
	return &identityUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for identity registration.
func (i *identityUseCaseWithMetrics) Register(
	ctx context.Context,
	input *domain.RegisterIdentityInput,
) (*domain.Identity, error) {
	start := time.Now()
	identity, err := i.next.Register(ctx, input)

	i.record(ctx, "identity_register", start, i.statusFor(ctx, err))

	return identity, err
}

// Check records metrics for single value checks.
func (i *identityUseCaseWithMetrics) Check(
	ctx context.Context,
	kind domain.FieldKind,
	raw string,
) (*domain.CheckResult, error) {
	start := time.Now()
	result, err := i.next.Check(ctx, kind, raw)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case !result.Valid:
		status = "invalid"
		i.metrics.RecordRejection(ctx, string(result.Kind), result.Code)
	}

	i.record(ctx, "field_check", start, status)

	return result, err
}

// CheckBatch records metrics for batch checks. Rejections are counted per value.
func (i *identityUseCaseWithMetrics) CheckBatch(
	ctx context.Context,
	kind domain.FieldKind,
	raws []string,
) ([]*domain.CheckResult, error) {
	start := time.Now()
	results, err := i.next.CheckBatch(ctx, kind, raws)

	status := "success"
	if err != nil {
		status = "error"
	}
	for _, result := range results {
		if result != nil && !result.Valid {
			i.metrics.RecordRejection(ctx, string(result.Kind), result.Code)
		}
	}

	i.record(ctx, "field_check_batch", start, status)

	return results, err
}

// HashPassword records metrics for password hashing.
func (i *identityUseCaseWithMetrics) HashPassword(ctx context.Context, raw string) (*domain.Password, error) {
	start := time.Now()
	password, err := i.next.HashPassword(ctx, raw)

	i.record(ctx, "password_hash", start, i.statusFor(ctx, err))

	return password, err
}

// VerifyPassword records metrics for password verification. A mismatch is
// reported as invalid.
func (i *identityUseCaseWithMetrics) VerifyPassword(
	ctx context.Context,
	input *domain.VerifyPasswordInput,
) (bool, error) {
	start := time.Now()
	ok, err := i.next.VerifyPassword(ctx, input)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case !ok:
		status = "invalid"
	}

	i.record(ctx, "password_verify", start, status)

	return ok, err
}

// statusFor maps an error to a metric status and counts value object rejections.
func (i *identityUseCaseWithMetrics) statusFor(ctx context.Context, err error) string {
	if err == nil {
		return "success"
	}
	var validationErr *domain.ValidationError
	if apperrors.As(err, &validationErr) {
		i.metrics.RecordRejection(ctx, validationErr.Field, validationErr.Code)
		return "invalid"
	}
	var fieldErrs validation.Errors
	if apperrors.As(err, &fieldErrs) {
		for field, fieldErr := range fieldErrs {
			var ruleErr validation.Error
			if apperrors.As(fieldErr, &ruleErr) {
				i.metrics.RecordRejection(ctx, field, ruleErr.Code())
			}
		}
		return "invalid"
	}
	if apperrors.Is(err, apperrors.ErrInvalidInput) {
		return "invalid"
	}
	return "error"
}

func (i *identityUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, status string) {
	i.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	i.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}
