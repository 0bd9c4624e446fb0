package utils

import (
	"encoding/json"
	"net/http"
)

// DetailResponse is the structured error body returned for rejected requests
type DetailResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return nil
	}

	return json.NewEncoder(w).Encode(data)
}

// WriteDetail writes a structured {"detail": ...} error response
func WriteDetail(w http.ResponseWriter, status int, detail string) error {
	return WriteJSON(w, status, DetailResponse{Detail: detail})
}

// WriteUnauthorized writes a 401 Unauthorized response
func WriteUnauthorized(w http.ResponseWriter, detail string) error {
	if detail == "" {
		detail = "Not authenticated"
	}
	return WriteDetail(w, http.StatusUnauthorized, detail)
}

// WriteForbidden writes a 403 Forbidden response
func WriteForbidden(w http.ResponseWriter, detail string) error {
	if detail == "" {
		detail = "Access forbidden"
	}
	return WriteDetail(w, http.StatusForbidden, detail)
}

// WriteNotFound writes a 404 Not Found response
func WriteNotFound(w http.ResponseWriter, detail string) error {
	if detail == "" {
		detail = "Resource not found"
	}
	return WriteDetail(w, http.StatusNotFound, detail)
}

// WriteInternalServerError writes a 500 Internal Server Error response
func WriteInternalServerError(w http.ResponseWriter, detail string) error {
	if detail == "" {
		detail = "Internal server error"
	}
	return WriteDetail(w, http.StatusInternalServerError, detail)
}
