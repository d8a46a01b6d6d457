package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urlkit/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		trusted    []string
		remoteAddr string
		expected   string
	}{
		{
			name:       "remote addr by default",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "10.0.0.1",
		},
		{
			name:       "first valid forwarded entry",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 203.0.113.7, 198.51.100.1"},
			trusted:    []string{"X-Forwarded-For"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "203.0.113.7",
		},
		{
			name: "trusted order wins",
			headers: map[string]string{
				"CF-Connecting-IP": "198.51.100.178",
				"X-Forwarded-For":  "203.0.113.7",
			},
			trusted:    []string{"CF-Connecting-IP", "X-Forwarded-For"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "198.51.100.178",
		},
		{
			name:       "invalid header falls through",
			headers:    map[string]string{"X-Real-IP": "not-an-ip"},
			trusted:    []string{"X-Real-IP"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "10.0.0.1",
		},
		{
			name:       "ipv6 normalized",
			headers:    map[string]string{"X-Real-IP": "2001:DB8:0:0::1"},
			trusted:    []string{"X-Real-IP"},
			remoteAddr: "[::1]:8080",
			expected:   "2001:db8::1",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[::1]:8080",
			expected:   "::1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.4",
			expected:   "192.0.2.4",
		},
		{
			name:       "unusable remote addr",
			remoteAddr: "pipe",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, clientip.FromRequest(r, tt.trusted...))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware("X-Forwarded-For")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "203.0.113.7", got)
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	_, ok := clientip.LogExtractor(context.Background())
	assert.False(t, ok)

	attr, ok := clientip.LogExtractor(clientip.WithContext(context.Background(), "192.0.2.1"))
	require.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "192.0.2.1", attr.Value.String())
}
