package app

import (
	"fmt"
	"sync"

	"github.com/allisson/idvalues/internal/identity/domain"
	identityService "github.com/allisson/idvalues/internal/identity/service"
	identityUseCase "github.com/allisson/idvalues/internal/identity/usecase"
)

// identityComponents holds the lazily built identity services.
type identityComponents struct {
	passwordEncoder domain.PasswordEncoder
	cpfGenerator    identityService.CPFGenerator
	useCase         identityUseCase.IdentityUseCase

	passwordEncoderInit sync.Once
	cpfGeneratorInit    sync.Once
	useCaseInit         sync.Once
}

// PasswordEncoder returns the encoder selected by PASSWORD_ENCODER.
func (c *Container) PasswordEncoder() (domain.PasswordEncoder, error) {
	c.identity.passwordEncoderInit.Do(func() {
		encoder, err := c.initPasswordEncoder()
		if err != nil {
			c.setInitError("passwordEncoder", err)
			return
		}
		c.identity.passwordEncoder = encoder
	})
	if err := c.initError("passwordEncoder"); err != nil {
		return nil, err
	}
	return c.identity.passwordEncoder, nil
}

// CPFGenerator returns the random CPF generator.
func (c *Container) CPFGenerator() identityService.CPFGenerator {
	c.identity.cpfGeneratorInit.Do(func() {
		c.identity.cpfGenerator = identityService.NewCPFGenerator()
	})
	return c.identity.cpfGenerator
}

// IdentityUseCase returns the identity use case, wrapped with metrics when enabled.
func (c *Container) IdentityUseCase() (identityUseCase.IdentityUseCase, error) {
	c.identity.useCaseInit.Do(func() {
		useCase, err := c.initIdentityUseCase()
		if err != nil {
			c.setInitError("identityUseCase", err)
			return
		}
		c.identity.useCase = useCase
	})
	if err := c.initError("identityUseCase"); err != nil {
		return nil, err
	}
	return c.identity.useCase, nil
}

// initPasswordEncoder creates the password encoder from configuration.
func (c *Container) initPasswordEncoder() (domain.PasswordEncoder, error) {
	encoder, err := identityService.NewPasswordEncoder(identityService.EncoderOptions{
		Kind:       c.config.PasswordEncoder,
		Policy:     c.config.PasswordHashPolicy,
		BcryptCost: c.config.BcryptCost,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create password encoder: %w", err)
	}

	if c.config.PasswordEncoder == identityService.EncoderLegacy {
		c.Logger().Warn("legacy password encoder is reversible and must not be used for new passwords")
	}
	return encoder, nil
}

// initIdentityUseCase creates the identity use case with all its dependencies.
func (c *Container) initIdentityUseCase() (identityUseCase.IdentityUseCase, error) {
	encoder, err := c.PasswordEncoder()
	if err != nil {
		return nil, fmt.Errorf("failed to get password encoder for identity use case: %w", err)
	}

	baseUseCase := identityUseCase.NewIdentityUseCase(encoder, c.config.BatchConcurrency)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for identity use case: %w", err)
		}
		return identityUseCase.NewIdentityUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
