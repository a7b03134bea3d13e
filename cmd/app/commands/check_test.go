package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/idvalues/internal/errors"
	"github.com/allisson/idvalues/internal/identity/domain"
	identityMocks "github.com/allisson/idvalues/internal/identity/usecase/mocks"
)

func TestRunCheck(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("Success_Text", func(t *testing.T) {
		mockUseCase := identityMocks.NewMockIdentityUseCase(t)
		mockUseCase.On("Check", ctx, domain.FieldCPF, "529.982.247-25").
			Return(&domain.CheckResult{
				Kind:      domain.FieldCPF,
				Sanitized: "52998224725",
				Masked:    "529.982.247-25",
				Valid:     true,
			}, nil).
			Once()

		var out bytes.Buffer
		err := RunCheck(ctx, mockUseCase, logger, &out, domain.FieldCPF, "529.982.247-25", "text")

		require.NoError(t, err)
		assert.Equal(t, "52998224725\n", out.String())
	})

	t.Run("Success_PasswordNotEchoed", func(t *testing.T) {
		mockUseCase := identityMocks.NewMockIdentityUseCase(t)
		mockUseCase.On("Check", ctx, domain.FieldPassword, "abcdefg1!").
			Return(&domain.CheckResult{Kind: domain.FieldPassword, Masked: "*********", Valid: true}, nil).
			Once()

		var out bytes.Buffer
		err := RunCheck(ctx, mockUseCase, logger, &out, domain.FieldPassword, "abcdefg1!", "text")

		require.NoError(t, err)
		assert.Equal(t, "Password is valid\n", out.String())
		assert.NotContains(t, out.String(), "abcdefg1!")
	})

	t.Run("Error_RejectedPrintsExactMessage", func(t *testing.T) {
		mockUseCase := identityMocks.NewMockIdentityUseCase(t)
		mockUseCase.On("Check", ctx, domain.FieldUsername, "ab").
			Return(&domain.CheckResult{
				Kind:      domain.FieldUsername,
				Sanitized: "ab",
				Masked:    "ab",
				Code:      "username_too_short",
				Message:   "Username must be at least 3 characters long",
			}, nil).
			Once()

		var out bytes.Buffer
		err := RunCheck(ctx, mockUseCase, logger, &out, domain.FieldUsername, "ab", "text")

		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Equal(t, "Username must be at least 3 characters long\n", out.String())
	})

	t.Run("Error_RejectedJSON", func(t *testing.T) {
		mockUseCase := identityMocks.NewMockIdentityUseCase(t)
		mockUseCase.On("Check", ctx, domain.FieldEmail, "bad").
			Return(&domain.CheckResult{
				Kind:      domain.FieldEmail,
				Sanitized: "bad",
				Masked:    "bad",
				Code:      "email_format",
				Message:   "Invalid email address format",
			}, nil).
			Once()

		var out bytes.Buffer
		err := RunCheck(ctx, mockUseCase, logger, &out, domain.FieldEmail, "bad", "json")
		assert.ErrorIs(t, err, ErrValidationFailed)

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, "email", result["kind"])
		assert.Equal(t, false, result["valid"])
		assert.Equal(t, "email_format", result["code"])
		assert.Equal(t, "Invalid email address format", result["message"])
	})

	t.Run("Error_UseCase", func(t *testing.T) {
		mockUseCase := identityMocks.NewMockIdentityUseCase(t)
		mockUseCase.On("Check", ctx, domain.FieldKind("rg"), "1").
			Return(nil, apperrors.ErrInvalidInput).
			Once()

		var out bytes.Buffer
		err := RunCheck(ctx, mockUseCase, logger, &out, domain.FieldKind("rg"), "1", "text")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.False(t, errors.Is(err, ErrValidationFailed))
		assert.Empty(t, out.String())
	})

	t.Run("Error_InvalidFormat", func(t *testing.T) {
		mockUseCase := identityMocks.NewMockIdentityUseCase(t)

		var out bytes.Buffer
		err := RunCheck(ctx, mockUseCase, logger, &out, domain.FieldCPF, "1", "yaml")

		assert.EqualError(t, err, "invalid format: yaml (valid options: text, json)")
	})
}

func TestRunCheckBatch(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	raws := []string{"alice", "x"}
	results := []*domain.CheckResult{
		{Kind: domain.FieldUsername, Sanitized: "alice", Masked: "alice", Valid: true},
		{
			Kind:      domain.FieldUsername,
			Sanitized: "x",
			Masked:    "x",
			Code:      "username_too_short",
			Message:   "Username must be at least 3 characters long",
		},
	}

	t.Run("Error_TextWithRejectedLine", func(t *testing.T) {
		mockUseCase := identityMocks.NewMockIdentityUseCase(t)
		mockUseCase.On("CheckBatch", ctx, domain.FieldUsername, raws).Return(results, nil).Once()

		var out bytes.Buffer
		io := IOTuple{Reader: strings.NewReader("alice\nx\n"), Writer: &out}
		err := RunCheckBatch(ctx, mockUseCase, logger, io, domain.FieldUsername, "text")

		assert.ErrorIs(t, err, ErrValidationFailed)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "LINE")
		assert.Contains(t, lines[1], "alice")
		assert.Contains(t, lines[1], "true")
		assert.Contains(t, lines[2], "Username must be at least 3 characters long")
	})

	t.Run("Success_JSON", func(t *testing.T) {
		mockUseCase := identityMocks.NewMockIdentityUseCase(t)
		mockUseCase.On("CheckBatch", ctx, domain.FieldUsername, []string{"alice"}).
			Return(results[:1], nil).
			Once()

		var out bytes.Buffer
		io := IOTuple{Reader: strings.NewReader("alice"), Writer: &out}
		err := RunCheckBatch(ctx, mockUseCase, logger, io, domain.FieldUsername, "json")

		require.NoError(t, err)
		var decoded []domain.CheckResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		assert.True(t, decoded[0].Valid)
		assert.Equal(t, "alice", decoded[0].Sanitized)
	})

	t.Run("Error_UseCase", func(t *testing.T) {
		mockUseCase := identityMocks.NewMockIdentityUseCase(t)
		mockUseCase.On("CheckBatch", ctx, domain.FieldUsername, raws).
			Return(nil, context.Canceled).
			Once()

		var out bytes.Buffer
		io := IOTuple{Reader: strings.NewReader("alice\nx\n"), Writer: &out}
		err := RunCheckBatch(ctx, mockUseCase, logger, io, domain.FieldUsername, "text")

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, out.String())
	})
}
