package navigation

import (
	"context"
	"net/http"
)

// FromRequest returns a Memory positioned at the absolute URL of r.
// Browsers never send the fragment, so Hash starts out empty.
func FromRequest(r *http.Request) *Memory {
	return NewMemory(RequestURL(r))
}

// RequestURL reconstructs the absolute URL r was sent to. X-Forwarded-Proto
// is honoured when it names http or https.
func RequestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}

	host := r.Host
	if host == "" {
		host = r.URL.Host
	}

	return scheme + "://" + host + r.URL.RequestURI()
}

type contextKey struct{}

// WithContext stores p in ctx.
func WithContext(ctx context.Context, p Provider) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the provider stored in ctx, or nil.
func FromContext(ctx context.Context) Provider {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(contextKey{}).(Provider)
	return p
}

// Middleware attaches a request-scoped provider to every request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), FromRequest(r))))
	})
}
