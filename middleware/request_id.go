package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader is the header used to propagate request IDs
const requestIDHeader = "X-Request-ID"

// RequestID assigns a request ID to every inbound request, honoring an
// existing X-Request-ID header. The ID is stored in the request context and
// echoed in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), requestID)))
	})
}
