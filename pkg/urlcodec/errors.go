package urlcodec

import "errors"

// ErrMalformedEscape is returned when a percent-encoded sequence cannot be decoded.
var ErrMalformedEscape = errors.New("malformed percent-encoding")
