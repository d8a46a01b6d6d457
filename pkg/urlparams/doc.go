// Package urlparams extracts query and fragment parameters from URLs with the
// same tolerant, regex-driven rules browsers scripts have long used, and
// mutates the fragment of the current location through a
// navigation.Provider.
//
// Every function takes the provider explicitly. An empty rawURL means "use
// the provider's current location":
//
//	nav := navigation.NewMemory("https://example.com/?t=a&p=s#tab=2")
//	q, _ := urlparams.Query(nav, "")          // {t: a, p: s}
//	h, _ := urlparams.ParseHash(nav, "")      // {tab: 2}
//
// # Absent results
//
// Lookups report absence with a false ok value or a nil *Params, which is
// distinct from an empty string. The explicit and ambient branches of Hash are
// asymmetric: for an explicit URL without a fragment Hash
// reports ok == false, while for the current location it always reports
// ok == true, possibly with an empty fragment.
//
// # Parsing rules
//
// Query scans the whole string for `[?&]+([^=&]+)=([^&]*)`, so a "?" in the
// middle of a URL also acts as a separator and a pair without "=" is skipped.
// Values are decoded like decodeURI; keys are kept verbatim. ParseHash splits
// on "&" and then on every "=", so a value containing "=" is truncated at the
// first one. Fragment names and values are decoded like decodeURIComponent.
// Malformed escapes are returned as errors wrapping urlcodec.ErrMalformedEscape.
//
// # Side effects
//
// RemoveHash, ChangeURLHash and ClearURLHash mutate the provider's navigation
// state. All other functions are read-only.
package urlparams
