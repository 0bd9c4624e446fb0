package handlers

import (
	"net/http"
	"time"

	"github.com/ims-platform/authgate/utils"
)

// StatusResponse represents the protected status endpoint response
type StatusResponse struct {
	Service     string `json:"service"`
	Environment string `json:"environment"`
	Time        string `json:"time"`
}

// Status handles GET /api/v1/status, a sample protected resource that is
// only reachable through the authentication gate
func Status(environment string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, StatusResponse{
			Service:     "authgate",
			Environment: environment,
			Time:        time.Now().UTC().Format(time.RFC3339),
		})
	}
}
