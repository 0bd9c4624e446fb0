package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the payload of a verified access token.
// Claims exist only for the duration of a verification decision and are
// never retained afterwards.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the identity claim required by the verifier. Tokens that
	// carry neither a username nor a subject are rejected.
	Username string `json:"username,omitempty"`
}

// Identity returns the identity claim of the token, preferring the
// username over the registered subject. Empty means no identity claim.
func (c *Claims) Identity() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Subject
}
