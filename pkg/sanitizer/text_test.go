package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/urlkit/pkg/sanitizer"
)

func TestTextContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "inline tags", input: "<p>Hello <b>world</b></p>", expected: "Hello world"},
		{name: "block tags separate words", input: "<p>one</p><p>two</p>", expected: "one two"},
		{name: "line breaks separate words", input: "line<br>break", expected: "line break"},
		{name: "script and style are skipped", input: "<div>a</div><script>alert(1)</script><style>p{}</style><div>b</div>", expected: "a b"},
		{name: "self-closing script keeps what follows", input: "before<script/> after", expected: "before after"},
		{name: "entities are decoded", input: "Tom &amp; Jerry &lt;3", expected: "Tom & Jerry <3"},
		{name: "comments are dropped", input: "a<!-- hidden -->b", expected: "ab"},
		{name: "plain text", input: "  just   text ", expected: "just text"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.TextContent(tt.input))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\u00e9", sanitizer.NormalizeText("e\u0301"))
	assert.Equal(t, "plain", sanitizer.NormalizeText("plain"))
}

func TestIsJSONObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{input: `{"a":1}`, expected: true},
		{input: ` [1, 2, 3] `, expected: true},
		{input: `{}`, expected: true},
		{input: `null`, expected: false},
		{input: `"str"`, expected: false},
		{input: `42`, expected: false},
		{input: `{bad`, expected: false},
		{input: ``, expected: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, sanitizer.IsJSONObject(tt.input), tt.input)
	}
}
