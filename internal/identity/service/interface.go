// Package service provides technical services for the identity value objects:
// password encoders implementing domain.PasswordEncoder and a generator of
// random valid CPFs.
package service

// CPFGenerator produces random CPFs that pass domain.ValidateCPF.
type CPFGenerator interface {
	// Generate returns 11 digits without punctuation.
	Generate() (string, error)
}
