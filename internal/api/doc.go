// Package api serves the URL and markup helpers as a JSON API.
//
// Every operation is a POST under /v1 taking and returning JSON:
//
//	POST /v1/encode      {"text": "..."}
//	POST /v1/decode      {"text": "..."}
//	POST /v1/escape      {"text": "...", "normalize": true}
//	POST /v1/unescape    {"text": "..."}
//	POST /v1/strip-tags  {"text": "...", "allow": "<b><i>"}
//	POST /v1/text        {"text": "..."}
//	POST /v1/trim        {"text": "...", "token": "..."}
//	POST /v1/slug        {"text": "...", "max_length": 60, "separator": "-", "suffix": 6}
//	POST /v1/query       {"url": "...", "param": "..."}
//	POST /v1/hash        {"url": "...", "param": "..."}
//
// When url is omitted, query and hash read the URL the request itself was
// sent to. When rate limiting is configured, /v1 is limited per client IP.
// Responses use the handler package envelope ({"data": ...} or
// {"error": ...}); malformed percent-escapes yield 400 "malformed_escape".
package api
