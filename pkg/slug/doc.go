// Package slug turns arbitrary text into a URL path segment.
//
//	slug.Make("Héllo, Wörld!")                  // "hello-world"
//	slug.Make("Straße & Co", slug.Separator("_")) // "strasse_co"
//	slug.Make("Release notes", slug.WithSuffix(6)) // "release-notes-x7g3k2"
//
// Letters are folded to ASCII by Unicode decomposition: combining marks are
// dropped and a few letters without a decomposition (ß, æ, ø, ł, ...) are
// spelled out. Everything that is not an ASCII letter or digit becomes a
// single separator. Output never starts or ends with the separator.
package slug
