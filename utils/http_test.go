package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) DetailResponse {
	t.Helper()

	var body DetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWriteJSON(t *testing.T) {
	t.Run("writes status and content type", func(t *testing.T) {
		w := httptest.NewRecorder()

		err := WriteJSON(w, http.StatusTeapot, map[string]string{"status": "ok"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("nil data writes empty body", func(t *testing.T) {
		w := httptest.NewRecorder()

		err := WriteJSON(w, http.StatusNoContent, nil)

		require.NoError(t, err)
		assert.Empty(t, w.Body.String())
	})
}

func TestWriteDetail(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteDetail(w, http.StatusForbidden, "Invalid token or expired token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid token or expired token", decodeDetail(t, w).Detail)
}

func TestWriteUnauthorized(t *testing.T) {
	t.Run("custom detail", func(t *testing.T) {
		w := httptest.NewRecorder()

		require.NoError(t, WriteUnauthorized(w, "Invalid authentication credentials"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid authentication credentials", decodeDetail(t, w).Detail)
	})

	t.Run("default detail", func(t *testing.T) {
		w := httptest.NewRecorder()

		require.NoError(t, WriteUnauthorized(w, ""))
		assert.Equal(t, "Not authenticated", decodeDetail(t, w).Detail)
	})
}

func TestWriteForbidden(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, WriteForbidden(w, ""))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access forbidden", decodeDetail(t, w).Detail)
}
