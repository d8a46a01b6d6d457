// Package main provides the urlkit command line tool.
//
// urlkit exposes the URL and markup helpers to shell pipelines and can serve
// them as a JSON API.
//
// Usage:
//
//	urlkit encode "a b/c"
//	echo '<b>hi</b><i>x</i>' | urlkit strip --allow '<b>'
//	urlkit query --param q 'https://example.com/?q=go'
//	urlkit serve --addr :8080
//
// See --help for all available options.
package main

func main() {
	Execute()
}
