package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/allisson/idvalues/internal/errors"
	"github.com/allisson/idvalues/internal/identity/domain"
	appValidation "github.com/allisson/idvalues/internal/validation"
)

// identityUseCase implements IdentityUseCase.
type identityUseCase struct {
	encoder     domain.PasswordEncoder
	concurrency int
}

// NewIdentityUseCase creates an IdentityUseCase. concurrency bounds the number
// of goroutines used by CheckBatch; values below 1 mean one.
func NewIdentityUseCase(encoder domain.PasswordEncoder, concurrency int) IdentityUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &identityUseCase{
		encoder:     encoder,
		concurrency: concurrency,
	}
}

// Register validates all fields before constructing any value object so the
// caller sees every failing field.
func (u *identityUseCase) Register(
	ctx context.Context,
	input *domain.RegisterIdentityInput,
) (*domain.Identity, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	cpf, err := domain.NewCPF(input.CPF)
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	username, err := domain.NewUsername(input.Username)
	if err != nil {
		return nil, err
	}
	password, err := domain.NewPassword(input.Password, u.encoder)
	if err != nil {
		return nil, err
	}

	return &domain.Identity{
		ID:        uuid.Must(uuid.NewV7()),
		CPF:       cpf,
		Email:     email,
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Check sanitizes, validates and masks a single raw value.
func (u *identityUseCase) Check(
	ctx context.Context,
	kind domain.FieldKind,
	raw string,
) (*domain.CheckResult, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	result := &domain.CheckResult{Kind: kind}
	var err error

	switch kind {
	case domain.FieldCPF:
		result.Sanitized = domain.SanitizeCPF(raw)
		result.Masked = domain.MaskCPF(raw)
		err = domain.ValidateCPF(result.Sanitized)
	case domain.FieldEmail:
		result.Sanitized = domain.SanitizeEmail(raw)
		result.Masked = domain.MaskEmail(raw)
		err = domain.ValidateEmail(result.Sanitized)
	case domain.FieldUsername:
		result.Sanitized = domain.SanitizeUsername(raw)
		result.Masked = domain.MaskUsername(raw)
		err = domain.ValidateUsername(result.Sanitized)
	case domain.FieldPassword:
		sanitized := domain.SanitizePassword(raw)
		result.Masked = strings.Repeat("*", utf8.RuneCountInString(sanitized))
		err = domain.ValidatePassword(sanitized)
	}

	if err == nil {
		result.Valid = true
		return result, nil
	}

	var validationErr *domain.ValidationError
	if !apperrors.As(err, &validationErr) {
		return nil, err
	}
	result.Code = validationErr.Code
	result.Message = validationErr.Message
	return result, nil
}

// CheckBatch fans the values out over at most u.concurrency goroutines.
func (u *identityUseCase) CheckBatch(
	ctx context.Context,
	kind domain.FieldKind,
	raws []string,
) ([]*domain.CheckResult, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	results := make([]*domain.CheckResult, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)

	for i, raw := range raws {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := u.Check(gctx, kind, raw)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// HashPassword builds a password value object with the configured encoder.
func (u *identityUseCase) HashPassword(ctx context.Context, raw string) (*domain.Password, error) {
	return domain.NewPassword(raw, u.encoder)
}

// VerifyPassword checks the input shape, then verifies by recomputation.
func (u *identityUseCase) VerifyPassword(ctx context.Context, input *domain.VerifyPasswordInput) (bool, error) {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Plain,
			validation.Required.Error("plaintext is required"),
			appValidation.NotBlank,
		),
		validation.Field(&input.Encoded,
			validation.Required.Error("encoded form is required"),
			appValidation.NoWhitespace,
		),
	)
	if err != nil {
		return false, appValidation.WrapValidationError(err)
	}
	return domain.VerifyPassword(input.Plain, input.Encoded, u.encoder), nil
}

// validateRegisterInput runs every field rule and collects all failures.
func validateRegisterInput(input *domain.RegisterIdentityInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.CPF, appValidation.CPF),
		validation.Field(&input.Email, appValidation.Email),
		validation.Field(&input.Username, appValidation.Username),
		validation.Field(&input.Password, appValidation.Password),
	)
	return appValidation.WrapValidationError(err)
}
