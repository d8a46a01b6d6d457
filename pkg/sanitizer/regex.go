package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Whitelist entries, matched against the lower-cased whitelist string.
	whitelistEntryRegex = regexp.MustCompile(`<[a-z][a-z0-9]*>`)

	// Tag-like constructs: opening or closing, with arbitrary attributes.
	// Names are ASCII only; (?i) would also fold U+212A and U+017F.
	tagRegex = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9]*)\b[^>]*>`)

	// HTML comments and <? ... ?> / <?php ... ?> blocks.
	commentsAndPIRegex = regexp.MustCompile(`(?i)<!--[\s\S]*?-->|<\?(?:php)?[\s\S]*?\?>`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Numeric filtering
	nonDigitRegex        = regexp.MustCompile(`[^0-9]`)
	nonDecimalDigitRegex = regexp.MustCompile(`[^0-9.]`)
)
