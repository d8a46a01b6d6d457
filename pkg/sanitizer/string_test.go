package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/urlkit/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing spaces",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\nhello\n\t",
			expected: "hello",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "preserves internal whitespace",
			input:    "  hello  world  ",
			expected: "hello  world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestRemoveExtraWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", sanitizer.RemoveExtraWhitespace("  a \t b\n\n c  "))
	assert.Equal(t, "", sanitizer.RemoveExtraWhitespace(" \n\t "))
}

func TestTrimRepeated(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		token    string
		expected string
	}{
		{name: "empty token trims whitespace", input: " cat  ", token: "", expected: "cat"},
		{name: "repeated token on both ends", input: "sunsunearthsun", token: "sun", expected: "earth"},
		{name: "token only at the start", input: "xxabc", token: "x", expected: "abc"},
		{name: "token only at the end", input: "abc--", token: "-", expected: "abc"},
		{name: "inner occurrences are kept", input: "/a/b/", token: "/", expected: "a/b"},
		{name: "regex metacharacters are literal", input: "..a.b..", token: ".", expected: "a.b"},
		{name: "whole string is token", input: "sunsun", token: "sun", expected: ""},
		{name: "no occurrence", input: "earth", token: "sun", expected: "earth"},
		{name: "whitespace trimmed after stripping", input: "sun earth sun", token: "sun", expected: "earth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.TrimRepeated(tt.input, tt.token))
		})
	}
}

func TestReplaceAll(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		find     string
		replace  string
		expected string
	}{
		{
			name:     "replaces every occurrence",
			input:    "this is a test but this is another test too",
			find:     "this",
			replace:  "that",
			expected: "that is a test but that is another test too",
		},
		{
			name:     "case-insensitive",
			input:    "This THIS this",
			find:     "this",
			replace:  "x",
			expected: "x x x",
		},
		{
			name:     "metacharacters in find are literal",
			input:    "a.b.c",
			find:     ".",
			replace:  "-",
			expected: "a-b-c",
		},
		{
			name:     "dollar in replacement is literal",
			input:    "price: X",
			find:     "x",
			replace:  "$1",
			expected: "price: $1",
		},
		{
			name:     "no match",
			input:    "hello",
			find:     "bye",
			replace:  "x",
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.ReplaceAll(tt.input, tt.find, tt.replace))
		})
	}
}

func TestOnlyNumber(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		allowDecimal bool
		expected     string
	}{
		{name: "mixed text", input: "test abc 124#$' xyz", expected: "124"},
		{name: "zero is a digit", input: "a100b", expected: "100"},
		{name: "decimals dropped by default", input: "v1.2.3", expected: "123"},
		{name: "decimals kept when allowed", input: "v1.2.3", allowDecimal: true, expected: "1.2.3"},
		{name: "numeric input unchanged", input: "42", expected: "42"},
		{name: "numeric float unchanged", input: "3.14", expected: "3.14"},
		{name: "no digits", input: "abc", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.OnlyNumber(tt.input, tt.allowDecimal))
		})
	}
}
