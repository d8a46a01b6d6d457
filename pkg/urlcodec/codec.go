package urlcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// uriReserved holds the characters whose escapes UnescapeURI keeps as-is.
const uriReserved = ";/?:@&=+$,#"

// Encode prepares text for use as a query value. Escaped slashes (`\/`) are
// removed, the remainder is component-escaped and every "%20" becomes "+".
func Encode(text string) string {
	text = strings.ReplaceAll(text, `\/`, "")
	return strings.ReplaceAll(EscapeComponent(text), "%20", "+")
}

// Decode reverses the plus-for-space convention before component-unescaping.
// Malformed escapes are reported, never replaced.
func Decode(text string) (string, error) {
	return UnescapeComponent(strings.ReplaceAll(text, "+", "%20"))
}

// EscapeComponent escapes every byte except ASCII letters, digits and
// - _ . ! ~ * ' ( ) using upper-case hex.
func EscapeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

// UnescapeComponent decodes every percent-encoded sequence in s.
func UnescapeComponent(s string) (string, error) {
	return unescape(s, "")
}

// UnescapeURI decodes percent-encoded sequences except those that stand for
// one of the URI delimiters ; / ? : @ & = + $ , #, which are kept verbatim.
func UnescapeURI(s string) (string, error) {
	return unescape(s, uriReserved)
}

func unescape(s, keep string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	// run collects consecutive decoded bytes; they must form valid UTF-8.
	run := make([]byte, 0, 8)
	flush := func(at int) error {
		if len(run) == 0 {
			return nil
		}
		if !utf8.Valid(run) {
			return fmt.Errorf("%w: invalid UTF-8 sequence before offset %d", ErrMalformedEscape, at)
		}
		b.Write(run)
		run = run[:0]
		return nil
	}

	for i := 0; i < len(s); {
		if s[i] != '%' {
			if err := flush(i); err != nil {
				return "", err
			}
			b.WriteByte(s[i])
			i++
			continue
		}

		if i+2 >= len(s) {
			return "", fmt.Errorf("%w: truncated escape %q at offset %d", ErrMalformedEscape, s[i:], i)
		}
		hi, okHi := unhex(s[i+1])
		lo, okLo := unhex(s[i+2])
		if !okHi || !okLo {
			return "", fmt.Errorf("%w: invalid escape %q at offset %d", ErrMalformedEscape, s[i:i+3], i)
		}

		c := hi<<4 | lo
		if c < utf8.RuneSelf && strings.IndexByte(keep, c) >= 0 {
			if err := flush(i); err != nil {
				return "", err
			}
			b.WriteString(s[i : i+3])
			i += 3
			continue
		}
		run = append(run, c)
		i += 3
	}
	if err := flush(len(s)); err != nil {
		return "", err
	}

	return b.String(), nil
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
