package handlers

import (
	"net/http"

	"github.com/ims-platform/authgate/utils"
)

// docsPage is a minimal Swagger UI page pointing at the served OpenAPI document
const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>authgate - API docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({url: "/openapi.json", dom_id: "#swagger-ui"});
  </script>
</body>
</html>`

// Docs handles GET /docs, serving the interactive API documentation.
// This endpoint is reachable without credentials by policy.
func Docs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(docsPage))
	}
}

// OpenAPI handles GET /openapi.json, serving the API description consumed
// by the documentation page
func OpenAPI() http.HandlerFunc {
	spec := map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":   "authgate",
			"version": "1.0.0",
		},
		"paths": map[string]interface{}{
			"/healthz":       map[string]interface{}{"get": map[string]interface{}{"summary": "Liveness check"}},
			"/readyz":        map[string]interface{}{"get": map[string]interface{}{"summary": "Readiness check"}},
			"/api/v1/status": map[string]interface{}{"get": map[string]interface{}{"summary": "Service status (requires bearer token)"}},
		},
		"components": map[string]interface{}{
			"securitySchemes": map[string]interface{}{
				"bearerAuth": map[string]interface{}{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
		},
		"security": []map[string]interface{}{{"bearerAuth": []interface{}{}}},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, spec)
	}
}
