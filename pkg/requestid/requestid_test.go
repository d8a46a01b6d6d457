package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urlkit/pkg/logger"
	"github.com/dmitrymomot/urlkit/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		incoming string
		reused   bool
	}{
		{name: "generates when missing", header: requestid.Header},
		{name: "reuses valid id", header: requestid.Header, incoming: "abc-123_X", reused: true},
		{name: "replaces invalid characters", header: requestid.Header, incoming: "abc 123<script>"},
		{name: "replaces overlong id", header: requestid.Header, incoming: strings.Repeat("a", 129)},
		{name: "custom header", header: "X-Correlation-ID", incoming: "corr-1", reused: true},
		{name: "empty header name uses default", header: "", incoming: "default-1", reused: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			header := tt.header
			if header == "" {
				header = requestid.Header
			}

			var fromCtx string
			h := requestid.Middleware(tt.header)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx = requestid.FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(header, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(header)
			require.NotEmpty(t, got)
			assert.Equal(t, got, fromCtx)
			if tt.reused {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "id-1", requestid.FromContext(requestid.WithContext(context.Background(), "id-1")))
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LogExtractor))

	log.InfoContext(requestid.WithContext(context.Background(), "req-42"), "handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])

	_, ok := requestid.LogExtractor(context.Background())
	assert.False(t, ok)
}
