// Package sanitizer provides helpers for cleaning markup and free text before
// it is rendered, logged or embedded in another document.
//
// The helpers are grouped into a few areas:
//
//   - Entities: EscapeHTML and UnescapeHTML convert between raw text and the
//     five HTML-unsafe characters & " ' < > and their named entities.
//
//   - Tags: StripTags removes tag-like constructs from text unless their
//     name appears in a caller-supplied whitelist such as "<b><i><a>".
//     Comments and processing instructions are always removed. A TagFilter
//     memoises parsed whitelists in a bounded LRU.
//
//   - Text: TextContent extracts readable text from markup using the
//     golang.org/x/net/html tokenizer, NormalizeText applies Unicode NFC.
//
//   - Strings: TrimRepeated, ReplaceAll, OnlyNumber and friends for ad-hoc
//     cleanup of user input.
//
// The tag filter is pattern based, not a full HTML
// parser. It keeps the exact text of whitelisted tags, including their
// attributes, and drops everything else tag-shaped:
//
//	clean := sanitizer.StripTags(`<p onclick="x()">Hi <b>there</b></p>`, "<b>")
//	// clean == "Hi <b>there</b>"
//
// Apply and Chain run Transforms as a pipeline; When makes a step optional:
//
//	clean := sanitizer.Chain(
//	    sanitizer.TextContent,
//	    sanitizer.NormalizeText,
//	    sanitizer.EscapeHTML,
//	)
//
// # Error handling
//
// None of the helpers returns an error. Malformed whitelists and malformed tag
// syntax are ignored: the offending entry simply contributes nothing.
//
// # Concurrency
//
// All helpers are safe for concurrent use. TagFilter guards its cache with a
// mutex.
package sanitizer
