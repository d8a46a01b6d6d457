package clientip

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/urlkit/pkg/logger"
)

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the IP stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// LogExtractor adds client_ip to log records written with a request context.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	if ip := FromContext(ctx); ip != "" {
		return logger.ClientIP(ip), true
	}
	return slog.Attr{}, false
}

// Middleware stores the client IP, resolved with the trusted headers, in the
// request context.
func Middleware(trusted ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := FromRequest(r, trusted...)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ip)))
		})
	}
}
