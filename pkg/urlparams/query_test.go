package urlparams_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urlkit/pkg/navigation"
	"github.com/dmitrymomot/urlkit/pkg/urlcodec"
	"github.com/dmitrymomot/urlkit/pkg/urlparams"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	nav := navigation.NewMemory("https://www.example.com/path1/path2?param=value1&q=hey")

	tests := []struct {
		name     string
		url      string
		keys     []string
		expected map[string]string
	}{
		{
			name:     "explicit url",
			url:      "http://x.com?t=a&p=s",
			keys:     []string{"t", "p"},
			expected: map[string]string{"t": "a", "p": "s"},
		},
		{
			name:     "current location",
			url:      "",
			keys:     []string{"param", "q"},
			expected: map[string]string{"param": "value1", "q": "hey"},
		},
		{
			name:     "duplicate keeps first position and last value",
			url:      "http://x.com?a=1&b=2&a=3",
			keys:     []string{"a", "b"},
			expected: map[string]string{"a": "3", "b": "2"},
		},
		{
			name:     "repeated separators",
			url:      "http://x.com/?&&a=1&&b=2",
			keys:     []string{"a", "b"},
			expected: map[string]string{"a": "1", "b": "2"},
		},
		{
			name:     "pair without equals sign is skipped",
			url:      "http://x.com/?flag&a=1",
			keys:     []string{"a"},
			expected: map[string]string{"a": "1"},
		},
		{
			name:     "question mark in value is kept",
			url:      "http://x.com/?a=1&b=2?c=3",
			keys:     []string{"a", "b"},
			expected: map[string]string{"a": "1", "b": "2?c=3"},
		},
		{
			name:     "empty value",
			url:      "http://x.com/?a=&b=2",
			keys:     []string{"a", "b"},
			expected: map[string]string{"a": "", "b": "2"},
		},
		{
			name:     "values are decoded like decodeURI",
			url:      "http://x.com/?q=a%20b%2Fc+d&name=%C3%A9",
			keys:     []string{"q", "name"},
			expected: map[string]string{"q": "a b%2Fc+d", "name": "é"},
		},
		{
			name:     "keys are verbatim",
			url:      "http://x.com/?a%20b=1",
			keys:     []string{"a%20b"},
			expected: map[string]string{"a%20b": "1"},
		},
		{
			name:     "no query",
			url:      "http://x.com/path",
			keys:     []string{},
			expected: map[string]string{},
		},
		{
			name:     "fragment is part of the last value",
			url:      "http://x.com/?a=1#frag",
			keys:     []string{"a"},
			expected: map[string]string{"a": "1#frag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			params, err := urlparams.Query(nav, tt.url)
			require.NoError(t, err)
			require.NotNil(t, params)
			assert.Equal(t, tt.keys, params.Keys())
			assert.Equal(t, tt.expected, params.Map())
		})
	}
}

func TestQueryMalformedEscape(t *testing.T) {
	t.Parallel()

	nav := navigation.NewMemory("https://example.com/?bad=%zz")

	params, err := urlparams.Query(nav, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, urlcodec.ErrMalformedEscape)
	assert.Nil(t, params)

	_, ok, err := urlparams.QueryParam(nav, "http://x.com/?a=%E0%A4", "a")
	assert.ErrorIs(t, err, urlcodec.ErrMalformedEscape)
	assert.False(t, ok)
}

func TestQueryParam(t *testing.T) {
	t.Parallel()

	nav := navigation.NewMemory("https://example.com/?q=hey")

	tests := []struct {
		name     string
		url      string
		param    string
		expected string
		ok       bool
	}{
		{name: "present", url: "http://x.com?t=a&p=s", param: "p", expected: "s", ok: true},
		{name: "absent", url: "http://x.com", param: "z", ok: false},
		{name: "present but empty", url: "http://x.com?z=", param: "z", expected: "", ok: true},
		{name: "current location", url: "", param: "q", expected: "hey", ok: true},
		{name: "empty name never matches", url: "http://x.com?=1", param: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			value, ok, err := urlparams.QueryParam(nav, tt.url, tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func BenchmarkQuery(b *testing.B) {
	nav := navigation.NewMemory("https://example.com/")
	url := "https://example.com/search?q=hello%20world&page=2&sort=desc&filter=a%2Cb"

	for b.Loop() {
		_, _ = urlparams.Query(nav, url)
	}
}
