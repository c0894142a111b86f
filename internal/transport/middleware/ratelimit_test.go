package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedHandler(t *testing.T, maxPerMinute int) http.Handler {
	t.Helper()
	rl := NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)
	return rl.Limit(maxPerMinute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func scanReq(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/scan", nil)
	req.RemoteAddr = addr
	return req
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	h := limitedHandler(t, 10)

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, scanReq("10.0.0.1:4000"))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	h := limitedHandler(t, 3)

	var last *httptest.ResponseRecorder
	for i := 0; i < 4; i++ {
		last = httptest.NewRecorder()
		h.ServeHTTP(last, scanReq("10.0.0.2:4000"))
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(last.Body.Bytes(), &body))
	assert.Equal(t, "rate limit exceeded", body["error"])
}

func TestRateLimiter_BucketsSharedAcrossPorts(t *testing.T) {
	h := limitedHandler(t, 2)

	// Same IP from different ephemeral ports drains one bucket.
	for _, addr := range []string{"10.0.0.3:1111", "10.0.0.3:2222"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, scanReq(addr))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, scanReq("10.0.0.3:3333"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiter_SeparateClients(t *testing.T) {
	h := limitedHandler(t, 1)

	recA := httptest.NewRecorder()
	h.ServeHTTP(recA, scanReq("10.0.0.4:4000"))
	recB := httptest.NewRecorder()
	h.ServeHTTP(recB, scanReq("10.0.0.5:4000"))

	assert.Equal(t, http.StatusOK, recA.Code)
	assert.Equal(t, http.StatusOK, recB.Code, "a different client gets its own bucket")
}
