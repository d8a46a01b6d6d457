// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client-supplied id when it is at most 128 characters of
// letters, digits, "-" and "_"; anything else is replaced with a new UUID.
// The id is stored in the request context, echoed in the response header and
// can be added to every log record with LogExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor))
//	r.Use(requestid.Middleware(requestid.Header))
package requestid
