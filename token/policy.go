package token

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingVerificationKey is returned when an enabled policy has no key material
	ErrMissingVerificationKey = errors.New("verification key is required when authentication is enabled")

	// ErrMissingAlgorithm is returned when an enabled policy has no signing algorithm
	ErrMissingAlgorithm = errors.New("signing algorithm is required when authentication is enabled")
)

// Policy holds the immutable token verification parameters for a service.
// It is built once at startup and shared read-only across all requests.
type Policy struct {
	// Enabled controls whether bearer tokens are verified at all.
	Enabled bool

	// PublicKey is the raw key material used to check token signatures.
	// PEM-encoded for asymmetric algorithms, the shared secret bytes for HMAC.
	PublicKey []byte

	// Algorithm is the expected signing algorithm (e.g. "RS256").
	// Tokens are never allowed to select their own algorithm.
	Algorithm string
}

// Validate checks the policy invariant: an enabled policy must carry both
// key material and an algorithm. A disabled policy is always valid.
func (p Policy) Validate() error {
	if !p.Enabled {
		return nil
	}
	if len(p.PublicKey) == 0 {
		return fmt.Errorf("invalid auth policy: %w", ErrMissingVerificationKey)
	}
	if p.Algorithm == "" {
		return fmt.Errorf("invalid auth policy: %w", ErrMissingAlgorithm)
	}
	return nil
}
