package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/allisson/idvalues/internal/identity/domain"
)

type cpfGenerator struct{}

// NewCPFGenerator creates a generator of cryptographically random valid CPFs.
func NewCPFGenerator() CPFGenerator {
	return &cpfGenerator{}
}

// Generate draws 9 random base digits, appends their check digits and retries
// the rare draws that produce a repeated-digit sequence.
func (g *cpfGenerator) Generate() (string, error) {
	for {
		prefix := make([]byte, domain.CPFPrefixLength)
		for i := range prefix {
			n, err := rand.Int(rand.Reader, big.NewInt(10))
			if err != nil {
				return "", fmt.Errorf("failed to generate random digit: %w", err)
			}
			prefix[i] = byte('0' + n.Int64())
		}

		if strings.Count(string(prefix), string(prefix[:1])) == domain.CPFPrefixLength {
			continue
		}

		checkDigits, err := domain.CPFCheckDigits(string(prefix))
		if err != nil {
			return "", err
		}
		return string(prefix) + checkDigits, nil
	}
}
