package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariquesani/aruuz-nigar/pkg/ctxutil"
)

func TestRecovery_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Recovery(logger)(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/scan", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String(), "nothing to log without a panic")
}

func TestRecovery_PanicBecomesJSON500(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("bad syllable index")
	})

	req := httptest.NewRequest(http.MethodPost, "/scan", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-panic-1"))
	rec := httptest.NewRecorder()
	Recovery(logger)(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])

	logOutput := buf.String()
	assert.Contains(t, logOutput, "panic recovered")
	assert.Contains(t, logOutput, "bad syllable index")
	assert.Contains(t, logOutput, "req-panic-1")
	assert.True(t, strings.Contains(logOutput, "stack"))
}
