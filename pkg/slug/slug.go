package slug

import (
	"crypto/rand"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

type Option func(*config)

type config struct {
	maxLength    int
	separator    string
	lowercase    bool
	suffixLength int
}

// MaxLength caps the slug at n bytes, suffix included. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = max(0, n) }
}

// Separator replaces the default "-". An empty separator is ignored.
func Separator(s string) Option {
	return func(c *config) {
		if s != "" {
			c.separator = s
		}
	}
}

// Lowercase controls case folding. It is on by default.
func Lowercase(enabled bool) Option {
	return func(c *config) { c.lowercase = enabled }
}

// WithSuffix appends n random lower-case letters and digits.
func WithSuffix(n int) Option {
	return func(c *config) { c.suffixLength = max(0, n) }
}

// spelled covers letters that have no canonical decomposition.
var spelled = map[rune]string{
	'ß': "ss", 'æ': "ae", 'Æ': "AE", 'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O", 'ł': "l", 'Ł': "L", 'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D", 'þ': "th", 'Þ': "TH", 'ı': "i",
}

// Make returns the slug of s. The result may be empty.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: "-", lowercase: true}
	for _, opt := range opts {
		opt(cfg)
	}

	limit := cfg.maxLength
	if limit > 0 && cfg.suffixLength > 0 {
		limit -= len(cfg.separator) + cfg.suffixLength
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false

	write := func(word string) bool {
		if pendingSep && b.Len() > 0 {
			if limit > 0 && b.Len()+len(cfg.separator)+len(word) > limit {
				return false
			}
			b.WriteString(cfg.separator)
		}
		if limit > 0 && b.Len()+len(word) > limit {
			return false
		}
		b.WriteString(word)
		pendingSep = false
		return true
	}

	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		var out string
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			out = string(r)
		case spelled[r] != "":
			out = spelled[r]
		default:
			pendingSep = true
			continue
		}
		if cfg.lowercase {
			out = strings.ToLower(out)
		}
		if !write(out) {
			break
		}
	}

	result := b.String()
	if cfg.suffixLength == 0 {
		return result
	}

	suffix := randomSuffix(cfg.suffixLength)
	if limit <= 0 && cfg.maxLength > 0 {
		// No room for the text; the suffix alone is cut to the limit.
		return suffix[:min(len(suffix), cfg.maxLength)]
	}
	if result == "" {
		return suffix
	}
	return result + cfg.separator + suffix
}

func randomSuffix(n int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	// crypto/rand.Read never returns an error since Go 1.24.
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}
