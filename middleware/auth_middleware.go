package middleware

import (
	"net/http"
	"strings"

	"github.com/ims-platform/authgate/utils"
	"go.uber.org/zap"
)

// TokenVerifier decides whether a bearer token is acceptable
type TokenVerifier interface {
	// Verify reports whether the token is correctly signed, unexpired and
	// carries an identity claim. It must never panic on malformed input.
	Verify(token string) bool
}

// CredentialError describes a failure to extract a bearer credential from a
// request. It carries the status code and detail returned to the client.
type CredentialError struct {
	Status int
	Detail string
}

// Error implements the error interface
func (e *CredentialError) Error() string {
	return e.Detail
}

var (
	// errNotAuthenticated is returned when the Authorization header is absent
	errNotAuthenticated = &CredentialError{
		Status: http.StatusUnauthorized,
		Detail: "Not authenticated",
	}

	// errInvalidCredentials is returned when the header is present but is not
	// a well-formed bearer credential
	errInvalidCredentials = &CredentialError{
		Status: http.StatusUnauthorized,
		Detail: "Invalid authentication credentials",
	}
)

// DefaultExemptPaths are the paths that bypass authentication unless the
// caller configures its own set: the interactive documentation endpoints
// must stay reachable without credentials.
var DefaultExemptPaths = []string{"/docs", "/openapi.json"}

// AuthMiddleware gates every inbound request on bearer-token verification.
// It holds no per-request state and is safe for concurrent use.
type AuthMiddleware struct {
	verifier TokenVerifier
	exempt   map[string]struct{}
	logger   *zap.Logger
}

// NewAuthMiddleware creates an AuthMiddleware. A nil exemptPaths slice means
// DefaultExemptPaths; an empty slice means no path bypasses authentication.
func NewAuthMiddleware(verifier TokenVerifier, exemptPaths []string, logger *zap.Logger) *AuthMiddleware {
	if exemptPaths == nil {
		exemptPaths = DefaultExemptPaths
	}
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, path := range exemptPaths {
		exempt[path] = struct{}{}
	}
	return &AuthMiddleware{
		verifier: verifier,
		exempt:   exempt,
		logger:   logger,
	}
}

// RequireAuth verifies the bearer token on every request before the
// downstream handler runs. Exempt paths pass through untouched; every
// failure is converted into a structured {"detail": ...} response and never
// reaches the downstream handler.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.exempt[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		requestID := GetRequestIDFromContext(r.Context())

		credential, credErr := extractBearerToken(r)
		if credErr != nil {
			m.logger.Warn("missing or malformed credentials",
				zap.String("request_id", requestID),
				zap.String("path", r.URL.Path),
				zap.Error(credErr))
			_ = utils.WriteDetail(w, credErr.Status, credErr.Detail)
			return
		}

		if !m.verifier.Verify(credential) {
			m.logger.Warn("token verification failed",
				zap.String("request_id", requestID),
				zap.String("path", r.URL.Path))
			_ = utils.WriteForbidden(w, "Invalid token or expired token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractBearerToken extracts the bearer credential from the Authorization
// header. The returned CredentialError carries the rejection status: 401 for
// both a missing header and a malformed or non-bearer credential.
func extractBearerToken(r *http.Request) (string, *CredentialError) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errNotAuthenticated
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errInvalidCredentials
	}

	credential := strings.TrimSpace(parts[1])
	if credential == "" {
		return "", errInvalidCredentials
	}

	return credential, nil
}
