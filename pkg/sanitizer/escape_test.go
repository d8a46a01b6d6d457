package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/urlkit/pkg/sanitizer"
)

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tag", input: "<html>", expected: "&lt;html&gt;"},
		{name: "all five characters", input: `Tom & "Jerry's" <b>`, expected: "Tom &amp; &quot;Jerry&#39;s&quot; &lt;b&gt;"},
		{name: "existing entity is escaped again", input: "&amp;", expected: "&amp;amp;"},
		{name: "other characters untouched", input: "café © /\\ `", expected: "café © /\\ `"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.EscapeHTML(tt.input))
		})
	}
}

func TestUnescapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tag", input: "&lt;html&gt;", expected: "<html>"},
		{name: "all five entities", input: "&amp;&quot;&#39;&lt;&gt;", expected: `&"'<>`},
		{name: "amp is resolved last", input: "&amp;lt;", expected: "&lt;"},
		{name: "double escaped quote", input: "&amp;quot;", expected: "&quot;"},
		{name: "unknown entities untouched", input: "&copy; &nbsp; &#x27;", expected: "&copy; &nbsp; &#x27;"},
		{name: "no entities", input: "plain text", expected: "plain text"},
		{name: "global replacement", input: "&lt;&lt;&lt;", expected: "<<<"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.UnescapeHTML(tt.input))
		})
	}
}

func TestEscapeHTML_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"&",
		`"'<>&`,
		"&amp;",
		"&lt;script&gt;",
		`<a href="x?a=1&b=2">it's</a>`,
		"&&&;;;<<>>",
		"&#39;&quot;",
	}
	for _, s := range inputs {
		assert.Equal(t, s, sanitizer.UnescapeHTML(sanitizer.EscapeHTML(s)), "round trip of %q", s)
	}
}
