package navigation

import (
	"net/url"
	"strings"
)

// Provider exposes the active location and the mutations allowed on it.
type Provider interface {
	// Href returns the full current URL.
	Href() string
	// Pathname returns the path component, "/" for a bare origin.
	Pathname() string
	// Search returns the query string including the leading "?", or "".
	Search() string
	// Hash returns the fragment including the leading "#", or "" when empty.
	Hash() string
	// Replace swaps the current entry for target resolved against Href.
	Replace(target string)
	// SetHash navigates to the current URL with a new fragment.
	SetHash(hash string)
}

// HistoryPusher is implemented by providers that can add history entries
// without navigating.
type HistoryPusher interface {
	PushState(target string)
}

// Scroller is implemented by providers that track the viewport offset.
type Scroller interface {
	Scroll() (top, left int)
	ScrollTo(top, left int)
}

// Location is a best-effort split of an href into its browser-style parts.
type Location struct {
	Href     string
	Protocol string // "https:"
	Host     string
	Pathname string
	Search   string
	Hash     string
}

// ParseLocation splits href the way a browser location object reports it.
// It never fails: unparseable input ends up in Pathname.
func ParseLocation(href string) Location {
	loc := Location{Href: href}
	rest := href

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		if len(rest) > i+1 {
			loc.Hash = rest[i:]
		}
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		if len(rest) > i+1 {
			loc.Search = rest[i:]
		}
		rest = rest[:i]
	}

	if i := strings.Index(rest, "://"); i > 0 {
		loc.Protocol = rest[:i+1]
		rest = rest[i+3:]
		if j := strings.IndexByte(rest, '/'); j >= 0 {
			loc.Host = rest[:j]
			rest = rest[j:]
		} else {
			loc.Host = rest
			rest = "/"
		}
	}
	loc.Pathname = rest

	return loc
}

// Origin returns protocol and host, e.g. "https://example.com".
func (l Location) Origin() string {
	if l.Protocol == "" {
		return ""
	}
	return l.Protocol + "//" + l.Host
}

// Resolve returns target interpreted relative to base. Fragment-only and
// query-only targets keep the rest of base intact.
func Resolve(base, target string) string {
	switch {
	case target == "":
		return base
	case strings.HasPrefix(target, "#"):
		return withoutHash(base) + target
	case strings.HasPrefix(target, "?"):
		loc := ParseLocation(base)
		return loc.Origin() + loc.Pathname + target
	}

	// net/url drops an empty fragment, so it is carried separately.
	fragment := ""
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target, fragment = target[:i], target[i:]
	}

	b, err := url.Parse(base)
	if err != nil {
		return joinRaw(ParseLocation(base), target) + fragment
	}
	ref, err := url.Parse(target)
	if err != nil {
		return joinRaw(ParseLocation(base), target) + fragment
	}
	return b.ResolveReference(ref).String() + fragment
}

// joinRaw resolves target against loc textually, for hrefs net/url rejects.
// The origin of loc is always kept for relative targets.
func joinRaw(loc Location, target string) string {
	switch {
	case strings.Contains(target, "://"):
		return target
	case strings.HasPrefix(target, "/"):
		return loc.Origin() + target
	}
	dir := loc.Pathname[:strings.LastIndexByte(loc.Pathname, '/')+1]
	return loc.Origin() + dir + target
}

func withoutHash(href string) string {
	if i := strings.IndexByte(href, '#'); i >= 0 {
		return href[:i]
	}
	return href
}
