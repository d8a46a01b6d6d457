package urlparams

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/urlkit/pkg/navigation"
	"github.com/dmitrymomot/urlkit/pkg/urlcodec"
)

// undefinedFragment is the literal a script passes when it stringifies a
// missing value; ChangeURLHash treats it as "no fragment".
const undefinedFragment = "undefined"

// URLWithoutHash returns the part of rawURL before the first "#". For an
// explicit URL, ok is false when that part is empty (e.g. "#only-hash").
// With an empty rawURL the provider's current URL is used and ok is always true.
func URLWithoutHash(nav navigation.Provider, rawURL string) (string, bool) {
	if rawURL != "" {
		prefix := strings.Split(rawURL, "#")[0]
		if prefix == "" {
			return "", false
		}
		return prefix, true
	}
	return strings.Split(nav.Href(), "#")[0], true
}

// Hash returns the fragment of rawURL without the leading "#". For an explicit
// URL ok is false when there is no fragment or it is empty. With an empty
// rawURL the provider's fragment is returned trimmed and ok is always true.
func Hash(nav navigation.Provider, rawURL string) (string, bool) {
	if rawURL != "" {
		parts := strings.Split(rawURL, "#")
		if len(parts) < 2 || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	return strings.TrimSpace(strings.Replace(nav.Hash(), "#", "", 1)), true
}

// ParseHash splits the fragment into name=value pairs. It returns nil when the
// fragment is absent or empty.
func ParseHash(nav navigation.Provider, rawURL string) (*Params, error) {
	fragment, ok := Hash(nav, rawURL)
	if !ok || fragment == "" {
		return nil, nil
	}

	params := NewParams()
	for _, piece := range strings.Split(fragment, "&") {
		parts := strings.Split(piece, "=")
		if len(parts) < 2 {
			parts = append(parts, "")
		}

		name, err := urlcodec.UnescapeComponent(parts[0])
		if err != nil {
			return nil, fmt.Errorf("hash parameter name %q: %w", parts[0], err)
		}
		value, err := urlcodec.UnescapeComponent(parts[1])
		if err != nil {
			return nil, fmt.Errorf("hash parameter %q: %w", name, err)
		}
		params.Set(name, value)
	}
	return params, nil
}

// HashParam returns a single decoded fragment value. ok is false when the
// fragment is absent or does not contain param.
func HashParam(nav navigation.Provider, rawURL, param string) (value string, ok bool, err error) {
	params, err := ParseHash(nav, rawURL)
	if err != nil {
		return "", false, err
	}
	value, ok = params.Get(param)
	return value, ok, nil
}

// RemoveHash replaces the current entry with one carrying an empty fragment.
func RemoveHash(nav navigation.Provider) {
	nav.Replace("#")
}

// URLPath returns the provider's current path.
func URLPath(nav navigation.Provider) string {
	return nav.Pathname()
}

// ChangeURLHash moves the current location to the given fragment. The
// literal "undefined" clears the fragment instead.
//
// Providers implementing navigation.HistoryPusher get a new history entry
// made of the current path, query and fragment. Otherwise the fragment is set
// directly and the scroll offset, when the provider tracks one, is restored
// afterwards.
func ChangeURLHash(nav navigation.Provider, fragment string) {
	hash := ""
	if fragment != undefinedFragment {
		hash = "#" + fragment
	}
	changeHash(nav, hash)
}

// ClearURLHash drops the fragment from the current location the same way
// ChangeURLHash does.
func ClearURLHash(nav navigation.Provider) {
	changeHash(nav, "")
}

func changeHash(nav navigation.Provider, hash string) {
	if h, ok := nav.(navigation.HistoryPusher); ok {
		h.PushState(nav.Pathname() + nav.Search() + hash)
		return
	}

	s, ok := nav.(navigation.Scroller)
	if !ok {
		nav.SetHash(hash)
		return
	}
	top, left := s.Scroll()
	nav.SetHash(hash)
	s.ScrollTo(top, left)
}
