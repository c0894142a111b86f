package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/tariquesani/aruuz-nigar/pkg/ctxutil"
)

// RequestIDHeader is the header carrying the request identifier.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that reuses an incoming request ID or
// generates a fresh UUID, storing it in the context and echoing it back
// in the response header.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
