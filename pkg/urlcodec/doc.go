// Package urlcodec percent-encodes and decodes strings for use inside URLs
// with the same character classes browsers use for encodeURIComponent,
// decodeURIComponent and decodeURI.
//
// The package-level Encode and Decode pair follow the "plus for space"
// convention used by HTML forms:
//
//	urlcodec.Encode("a b/c")      // "a+b%2Fc"
//	urlcodec.Decode("a+b%2Fc")    // "a b/c", nil
//
// Encode additionally drops every escaped-slash sequence (`\/`) before
// encoding, which makes JSON-escaped URLs safe to pass through unchanged.
//
// # Asymmetry
//
// Encode and Decode are inverses only for input that does not contain a
// literal "+". Encode("1+1") yields "1%2B1" which decodes back correctly, but
// Decode("1+1") yields "1 1". Callers that round-trip user input must keep
// that in mind; the behaviour is deliberate and kept for compatibility.
//
// # Error handling
//
// Encoding never fails. Decoding returns an error wrapping ErrMalformedEscape
// when a "%" is not followed by two hex digits or when the escaped bytes do not
// form valid UTF-8. No replacement character is substituted.
package urlcodec
