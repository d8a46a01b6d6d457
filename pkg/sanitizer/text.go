package sanitizer

import (
	"encoding/json"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// TextContent returns the readable text of a markup fragment: tags are
// dropped, entities decoded, script and style bodies skipped and whitespace
// collapsed. Block-level tags separate words.
func TextContent(s string) string {
	if s == "" {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))
	skip := 0

	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			// io.EOF or a tokenizer error; either way the input is exhausted.
			return RemoveExtraWhitespace(b.String())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if isRawTextTag(string(name)) {
				// A self-closing <script/> has no body and no end tag.
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			if isBlockTag(string(name)) {
				b.WriteByte(' ')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if isRawTextTag(string(name)) {
				if skip > 0 {
					skip--
				}
				continue
			}
			if isBlockTag(string(name)) {
				b.WriteByte(' ')
			}

		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// NormalizeText converts s to Unicode normalization form C so visually equal
// strings compare and escape identically.
func NormalizeText(s string) string {
	return norm.NFC.String(s)
}

// IsJSONObject reports whether s holds a JSON object or array.
func IsJSONObject(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return false
	}
	return json.Valid([]byte(s))
}

func isRawTextTag(name string) bool {
	switch name {
	case "script", "style", "template", "noscript":
		return true
	}
	return false
}

func isBlockTag(name string) bool {
	switch name {
	case "p", "div", "br", "hr", "li", "ul", "ol", "tr", "td", "th", "table",
		"h1", "h2", "h3", "h4", "h5", "h6", "section", "article", "header",
		"footer", "blockquote", "pre", "dd", "dt":
		return true
	}
	return false
}
