package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ims-platform/authgate/app"
	"github.com/ims-platform/authgate/handlers"
	"github.com/ims-platform/authgate/middleware"
)

// SetupRoutes configures all application routes and middleware. The
// authentication gate wraps the whole router, so every request passes
// through it before any handler runs; only the configured exempt paths
// bypass verification.
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Authentication gate (nil when disabled by configuration)
	if deps.AuthMiddleware != nil {
		r.Use(deps.AuthMiddleware.RequireAuth)
	}

	// Health check endpoints
	r.Get("/healthz", handlers.HealthCheck())
	r.Get("/readyz", handlers.ReadinessCheck(deps.AuthReady))

	// Documentation endpoints (exempt from authentication by policy)
	r.Get("/docs", handlers.Docs())
	r.Get("/openapi.json", handlers.OpenAPI())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", handlers.Status(deps.Config.Environment))
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
	})

	return r
}
