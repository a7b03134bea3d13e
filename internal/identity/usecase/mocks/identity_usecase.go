// Package mocks provides testify mocks for the identity use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/idvalues/internal/identity/domain"
)

// MockIdentityUseCase is a mock implementation of usecase.IdentityUseCase.
type MockIdentityUseCase struct {
	mock.Mock
}

// NewMockIdentityUseCase creates a MockIdentityUseCase and registers a cleanup
// that asserts its expectations.
func NewMockIdentityUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityUseCase {
	m := &MockIdentityUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIdentityUseCase) Register(
	ctx context.Context,
	input *domain.RegisterIdentityInput,
) (*domain.Identity, error) {
	args := m.Called(ctx, input)
	var identity *domain.Identity
	if v := args.Get(0); v != nil {
		identity = v.(*domain.Identity)
	}
	return identity, args.Error(1)
}

func (m *MockIdentityUseCase) Check(
	ctx context.Context,
	kind domain.FieldKind,
	raw string,
) (*domain.CheckResult, error) {
	args := m.Called(ctx, kind, raw)
	var result *domain.CheckResult
	if v := args.Get(0); v != nil {
		result = v.(*domain.CheckResult)
	}
	return result, args.Error(1)
}

func (m *MockIdentityUseCase) CheckBatch(
	ctx context.Context,
	kind domain.FieldKind,
	raws []string,
) ([]*domain.CheckResult, error) {
	args := m.Called(ctx, kind, raws)
	var results []*domain.CheckResult
	if v := args.Get(0); v != nil {
		results = v.([]*domain.CheckResult)
	}
	return results, args.Error(1)
}

func (m *MockIdentityUseCase) HashPassword(ctx context.Context, raw string) (*domain.Password, error) {
	args := m.Called(ctx, raw)
	var password *domain.Password
	if v := args.Get(0); v != nil {
		password = v.(*domain.Password)
	}
	return password, args.Error(1)
}

func (m *MockIdentityUseCase) VerifyPassword(ctx context.Context, input *domain.VerifyPasswordInput) (bool, error) {
	args := m.Called(ctx, input)
	return args.Bool(0), args.Error(1)
}
