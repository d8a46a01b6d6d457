package sanitizer

import (
	"regexp"
	"strconv"
	"strings"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveExtraWhitespace collapses runs of whitespace into a single space and
// trims the result.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// TrimRepeated strips every leading and trailing repetition of token from s,
// then trims whitespace. An empty token only trims whitespace.
//
//	TrimRepeated(" cat  ", "")            // "cat"
//	TrimRepeated("sunsunearthsun", "sun") // "earth"
func TrimRepeated(s, token string) string {
	if token == "" {
		return strings.TrimSpace(s)
	}
	q := regexp.QuoteMeta(token)
	re := regexp.MustCompile(`^(?:` + q + `)+|(?:` + q + `)+$`)
	return strings.TrimSpace(re.ReplaceAllString(s, ""))
}

// ReplaceAll replaces every case-insensitive occurrence of find with replace.
// Both are taken literally.
func ReplaceAll(s, find, replace string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(find))
	return re.ReplaceAllLiteralString(s, replace)
}

// OnlyNumber keeps the digits of s, plus dots when allowDecimal is set.
// Input that already parses as a number is returned unchanged.
func OnlyNumber(s string, allowDecimal bool) string {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return s
	}
	if allowDecimal {
		return nonDecimalDigitRegex.ReplaceAllString(s, "")
	}
	return nonDigitRegex.ReplaceAllString(s, "")
}
