package handlers

import (
	"net/http"
	"time"

	"github.com/ims-platform/authgate/utils"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheck handles GET /healthz
// Basic health check - always returns 200 if the service is running
func HealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// ReadinessCheck handles GET /readyz
// Readiness check - validates that authentication is ready to serve traffic
func ReadinessCheck(authReady func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"auth": "ready"}
		status := "ready"
		httpStatus := http.StatusOK

		if !authReady() {
			checks["auth"] = "not_initialized"
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
		}

		_ = utils.WriteJSON(w, httpStatus, HealthResponse{
			Status:    status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    checks,
		})
	}
}
