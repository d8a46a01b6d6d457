package urlparams

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/urlkit/pkg/navigation"
	"github.com/dmitrymomot/urlkit/pkg/urlcodec"
)

var queryPairRegex = regexp.MustCompile(`[?&]+([^=&]+)=([^&]*)`)

// Query returns every key=value pair found after a "?" or "&" in rawURL, or in
// the provider's current URL when rawURL is empty. Later duplicates overwrite
// earlier values. The result is never nil on success.
func Query(nav navigation.Provider, rawURL string) (*Params, error) {
	if rawURL == "" {
		rawURL = nav.Href()
	}

	params := NewParams()
	for _, m := range queryPairRegex.FindAllStringSubmatch(rawURL, -1) {
		value, err := urlcodec.UnescapeURI(m[2])
		if err != nil {
			return nil, fmt.Errorf("query parameter %q: %w", m[1], err)
		}
		params.Set(m[1], value)
	}
	return params, nil
}

// QueryParam returns a single decoded query value. ok is false when the
// parameter is not present.
func QueryParam(nav navigation.Provider, rawURL, param string) (value string, ok bool, err error) {
	params, err := Query(nav, rawURL)
	if err != nil {
		return "", false, err
	}
	value, ok = params.Get(param)
	return value, ok, nil
}
