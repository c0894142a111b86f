package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mark returns middleware that appends its tag to the trace on the way
// in (before the wrapped handler runs).
func mark(trace *[]string, tag string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChain_OutermostFirst(t *testing.T) {
	var trace []string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "scan")
	})

	Chain(mark(&trace, "request-id"), mark(&trace, "logger"))(h).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/scan", nil))

	assert.Equal(t, []string{"request-id", "logger", "scan"}, trace)
}

func TestChain_Empty(t *testing.T) {
	called := false
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	Chain()(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/heartbeat", nil))
	assert.True(t, called, "an empty chain is the identity")
}

func TestChain_ShortCircuit(t *testing.T) {
	reject := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	reached := false
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	rec := httptest.NewRecorder()
	Chain(reject)(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/scan", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.False(t, reached, "a rejecting middleware must stop the chain")
}
