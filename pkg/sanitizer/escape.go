package sanitizer

import "strings"

// htmlEscaper replaces in a single pass, so entities it introduces are never
// escaped a second time.
var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`"`, "&quot;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
)

// htmlUnescapeOrder resolves &amp; last so "&amp;lt;" yields "&lt;", not "<".
var htmlUnescapeOrder = [...]struct{ entity, char string }{
	{"&quot;", `"`},
	{"&#39;", `'`},
	{"&lt;", `<`},
	{"&gt;", `>`},
	{"&amp;", `&`},
}

// EscapeHTML replaces & " ' < > with &amp; &quot; &#39; &lt; &gt;.
// No other character is touched.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// UnescapeHTML reverses EscapeHTML. Only the five entities EscapeHTML produces
// are recognised; every other entity is left as is.
func UnescapeHTML(s string) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}
	for _, e := range htmlUnescapeOrder {
		s = strings.ReplaceAll(s, e.entity, e.char)
	}
	return s
}
