package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/farms/f1", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	logOutput := buf.String()
	require.Contains(t, logOutput, LogMsgRequestHeaders)
	assert.NotContains(t, logOutput, "secret-key-123")
	assert.NotContains(t, logOutput, "Bearer mytoken")
	assert.Contains(t, logOutput, "TestAgent")
	assert.Contains(t, logOutput, LogMsgRequestCompleted)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_SkipsProbes(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(okHandler())
	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Empty(t, rec.Header().Get(HeaderRequestID), path)
	}

	assert.NotContains(t, buf.String(), LogMsgRequestStarted)
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)
	_, err := rw.Write([]byte("x"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rw.statusCode)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
