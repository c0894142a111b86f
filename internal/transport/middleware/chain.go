package middleware

import "net/http"

// Middleware wraps an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds middleware into a single Middleware. Order is
// outermost-first: Chain(RequestID(), Logger(l))(h) stamps the request
// ID before the access log runs, and both run before h. The scan
// endpoint relies on this ordering so panics and rate-limit rejections
// are logged with their request ID.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
