package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyValidate(t *testing.T) {
	t.Run("enabled policy with key and algorithm is valid", func(t *testing.T) {
		policy := Policy{Enabled: true, PublicKey: []byte("key"), Algorithm: "RS256"}

		assert.NoError(t, policy.Validate())
	})

	t.Run("enabled policy without key fails", func(t *testing.T) {
		policy := Policy{Enabled: true, Algorithm: "RS256"}

		assert.ErrorIs(t, policy.Validate(), ErrMissingVerificationKey)
	})

	t.Run("enabled policy without algorithm fails", func(t *testing.T) {
		policy := Policy{Enabled: true, PublicKey: []byte("key")}

		assert.ErrorIs(t, policy.Validate(), ErrMissingAlgorithm)
	})

	t.Run("disabled policy with empty fields is valid", func(t *testing.T) {
		policy := Policy{Enabled: false}

		assert.NoError(t, policy.Validate())
	})
}
