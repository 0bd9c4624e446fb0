package app

import (
	"fmt"
	"os"

	"github.com/ims-platform/authgate/config"
	"github.com/ims-platform/authgate/middleware"
	"github.com/ims-platform/authgate/token"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies. This is the central
// wiring point for dependency injection.
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Auth. Both are nil when authentication is disabled by configuration.
	Verifier       *token.Verifier
	AuthMiddleware *middleware.AuthMiddleware
}

// NewDependencies creates and wires up all application dependencies.
// A configuration problem (unreadable key, bad algorithm) is returned as an
// error so the caller decides how to fail; the service must never start
// serving traffic with authentication silently disabled.
func NewDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initAuth(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize authentication: %w", err)
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initAuth reads the verification key and builds the verifier and the gate
func (d *Dependencies) initAuth(cfg *config.Config) error {
	if !cfg.Auth.Enabled {
		d.Logger.Warn("authentication disabled by configuration, all requests will be allowed")
		return nil
	}

	keyBytes, err := os.ReadFile(cfg.Auth.PublicKeyPath)
	if err != nil {
		return fmt.Errorf("cannot read public key %q: %w", cfg.Auth.PublicKeyPath, err)
	}

	verifier, err := token.NewVerifier(token.Policy{
		Enabled:   true,
		PublicKey: keyBytes,
		Algorithm: cfg.Auth.Algorithm,
	}, d.Logger)
	if err != nil {
		return err
	}

	d.Verifier = verifier
	d.AuthMiddleware = middleware.NewAuthMiddleware(verifier, cfg.Auth.ExemptPaths, d.Logger)

	d.Logger.Info("authentication initialized",
		zap.String("algorithm", cfg.Auth.Algorithm),
		zap.Strings("exempt_paths", cfg.Auth.ExemptPaths))
	return nil
}

// AuthReady reports whether the gate is ready to verify tokens. When
// authentication is disabled the service is considered ready by definition.
func (d *Dependencies) AuthReady() bool {
	return !d.Config.Auth.Enabled || d.Verifier != nil
}
