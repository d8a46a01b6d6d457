package sanitizer

import "strings"

// DefaultWhitelistCacheSize is the number of parsed whitelists a TagFilter
// keeps unless configured otherwise.
const DefaultWhitelistCacheSize = 64

// TagFilter strips tags that are not whitelisted. Parsed whitelists are
// memoised so hot paths that reuse the same whitelist string skip the regex
// scan.
type TagFilter struct {
	cache *whitelistCache
}

// TagFilterOption configures a TagFilter.
type TagFilterOption func(*TagFilter)

// WithWhitelistCacheSize bounds the whitelist cache. A size of zero or less
// disables caching.
func WithWhitelistCacheSize(size int) TagFilterOption {
	return func(f *TagFilter) {
		if size <= 0 {
			f.cache = nil
			return
		}
		f.cache = newWhitelistCache(size)
	}
}

// NewTagFilter returns a TagFilter with a DefaultWhitelistCacheSize cache.
func NewTagFilter(opts ...TagFilterOption) *TagFilter {
	f := &TagFilter{cache: newWhitelistCache(DefaultWhitelistCacheSize)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultTagFilter = NewTagFilter()

// StripTags removes every tag from input whose name is not listed in allowed
// (for example "<b><i>"). Comments and <? ?> blocks are always removed. Text
// between tags is preserved, as are the attributes of whitelisted tags.
func StripTags(input, allowed string) string {
	return defaultTagFilter.Strip(input, allowed)
}

// Whitelist parses allowed, consulting the cache first.
func (f *TagFilter) Whitelist(allowed string) Whitelist {
	if f.cache == nil {
		return ParseWhitelist(allowed)
	}
	if w, ok := f.cache.get(allowed); ok {
		return w
	}
	w := ParseWhitelist(allowed)
	f.cache.put(allowed, w)
	return w
}

// CachedWhitelists reports how many parsed whitelists are currently cached.
func (f *TagFilter) CachedWhitelists() int {
	if f.cache == nil {
		return 0
	}
	return f.cache.len()
}

// Strip is StripTags using this filter's cache.
func (f *TagFilter) Strip(input, allowed string) string {
	if input == "" {
		return ""
	}
	return f.StripWith(input, f.Whitelist(allowed))
}

// StripWith removes comments, <? ?> blocks and every tag not in w.
// Each tag is kept or dropped as a whole, attributes included.
func (f *TagFilter) StripWith(input string, w Whitelist) string {
	if input == "" {
		return ""
	}

	input = commentsAndPIRegex.ReplaceAllString(input, "")

	matches := tagRegex.FindAllStringSubmatchIndex(input, -1)
	if len(matches) == 0 {
		return input
	}

	var b strings.Builder
	b.Grow(len(input))
	last := 0
	for _, m := range matches {
		b.WriteString(input[last:m[0]])
		if w.Allows(input[m[2]:m[3]]) {
			b.WriteString(input[m[0]:m[1]])
		}
		last = m[1]
	}
	b.WriteString(input[last:])

	return b.String()
}
