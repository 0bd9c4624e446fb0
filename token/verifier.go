package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var (
	// ErrUnsupportedAlgorithm is returned when the configured algorithm is unknown
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

	// ErrInvalidKey is returned when the key material cannot be parsed for the configured algorithm
	ErrInvalidKey = errors.New("invalid verification key")

	// ErrTokenInvalid is returned when a token fails structural or signature checks
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned when a token's expiry claim is in the past
	ErrTokenExpired = errors.New("token expired")

	// ErrMissingIdentity is returned when a token carries no identity claim
	ErrMissingIdentity = errors.New("missing identity claim")
)

// Verifier decides whether a bearer token is acceptable. The verification
// key and algorithm are fixed at construction and never read from the token
// itself, so a caller can never select its own trust parameters.
//
// A Verifier holds no per-request state and is safe for concurrent use.
type Verifier struct {
	key    any
	parser *jwt.Parser
	logger *zap.Logger
}

// NewVerifier creates a Verifier from an enabled policy. The key material is
// parsed once, up front, so a bad key or algorithm fails construction rather
// than every request.
func NewVerifier(policy Policy, logger *zap.Logger) (*Verifier, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if !policy.Enabled {
		return nil, errors.New("cannot build a verifier from a disabled policy")
	}

	if jwt.GetSigningMethod(policy.Algorithm) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, policy.Algorithm)
	}

	key, err := parseVerificationKey(policy.PublicKey, policy.Algorithm)
	if err != nil {
		return nil, err
	}

	return &Verifier{
		key: key,
		// Pinning valid methods to the single configured algorithm rejects
		// algorithm-confusion tokens before any signature check runs.
		parser: jwt.NewParser(jwt.WithValidMethods([]string{policy.Algorithm})),
		logger: logger,
	}, nil
}

// Verify reports whether the token is acceptable: correctly signed with the
// configured key and algorithm, unexpired, and carrying an identity claim.
// Every failure mode collapses to false; no error or panic escapes.
func (v *Verifier) Verify(tokenString string) bool {
	v.logger.Debug("checking access token")

	claims, err := v.decode(tokenString)
	if err != nil {
		v.logger.Info("access token rejected", zap.Error(err))
		return false
	}

	v.logger.Debug("access token accepted", zap.String("identity", claims.Identity()))
	return true
}

// decode parses and verifies the token, preserving the failure cause for
// logging and tests. The cause is never exposed to HTTP clients.
func (v *Verifier) decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Identity() == "" {
		return nil, ErrMissingIdentity
	}
	return claims, nil
}

// parseVerificationKey interprets the raw key material according to the
// algorithm family: PEM public keys for asymmetric algorithms, raw secret
// bytes for HMAC.
func parseVerificationKey(keyMaterial []byte, algorithm string) (any, error) {
	switch {
	case strings.HasPrefix(algorithm, "HS"):
		return keyMaterial, nil
	case strings.HasPrefix(algorithm, "RS"), strings.HasPrefix(algorithm, "PS"):
		key, err := jwt.ParseRSAPublicKeyFromPEM(keyMaterial)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		return key, nil
	case strings.HasPrefix(algorithm, "ES"):
		key, err := jwt.ParseECPublicKeyFromPEM(keyMaterial)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		return key, nil
	case algorithm == "EdDSA":
		key, err := jwt.ParseEdPublicKeyFromPEM(keyMaterial)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}
