// Package navigation models the "current location" a URL helper falls back
// to when it is not given an explicit URL, together with the few mutations
// such helpers perform on it (replacing the fragment, pushing a history
// entry).
//
// Instead of reading process-wide state, every consumer receives a Provider.
// Two implementations ship with the package:
//
//   - Memory: an in-memory location with a history stack and scroll offsets.
//     It is safe for concurrent use and is what tests and the CLI use.
//   - FromRequest: a Memory seeded from an incoming *http.Request. It is
//     the hosted provider used by the HTTP API.
//
// Optional capabilities are discovered with type assertions:
//
//	if h, ok := p.(navigation.HistoryPusher); ok {
//	    h.PushState("/path?x=1#frag")
//	}
//
// WithoutHistory hides PushState from a Memory to exercise the fallback path
// used when history manipulation is unavailable.
//
// Providers can travel through a context.Context with WithContext and
// FromContext.
package navigation
