package app

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/ims-platform/authgate/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeTestPublicKey writes a PEM-encoded RSA public key to a temp file
func writeTestPublicKey(t *testing.T) string {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jwt.pub")
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	require.NoError(t, os.WriteFile(path, pemBytes, 0o600))
	return path
}

func baseConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Auth: config.AuthConfig{
			Enabled:     true,
			Algorithm:   "RS256",
			ExemptPaths: []string{"/docs", "/openapi.json"},
		},
		Observability: config.ObservabilityConfig{LogLevel: "info", LogFormat: "json"},
	}
}

func TestNewDependencies(t *testing.T) {
	logger := zap.NewNop()

	t.Run("auth enabled with readable key", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Auth.PublicKeyPath = writeTestPublicKey(t)

		deps, err := NewDependencies(cfg, logger)

		require.NoError(t, err)
		assert.NotNil(t, deps.Verifier)
		assert.NotNil(t, deps.AuthMiddleware)
		assert.True(t, deps.AuthReady())
	})

	t.Run("missing key file fails construction", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Auth.PublicKeyPath = filepath.Join(t.TempDir(), "does-not-exist.pub")

		_, err := NewDependencies(cfg, logger)

		assert.Error(t, err)
	})

	t.Run("unreadable key material fails construction", func(t *testing.T) {
		cfg := baseConfig()
		path := filepath.Join(t.TempDir(), "jwt.pub")
		require.NoError(t, os.WriteFile(path, []byte("not a key"), 0o600))
		cfg.Auth.PublicKeyPath = path

		_, err := NewDependencies(cfg, logger)

		assert.Error(t, err)
	})

	t.Run("auth disabled skips the gate", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Auth.Enabled = false

		deps, err := NewDependencies(cfg, logger)

		require.NoError(t, err)
		assert.Nil(t, deps.Verifier)
		assert.Nil(t, deps.AuthMiddleware)
		assert.True(t, deps.AuthReady())
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		cfg := baseConfig()

		logger, err := NewLogger(cfg)

		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("console format", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Observability.LogFormat = "console"

		logger, err := NewLogger(cfg)

		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("invalid level fails", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Observability.LogLevel = "shout"

		_, err := NewLogger(cfg)

		assert.Error(t, err)
	})
}
