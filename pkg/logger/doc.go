// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers so that every package logs the same keys.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// result in a ContextHandler that appends attributes taken from the context
// of each *Context call (the request id, for instance).
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "urlkit"),
//	    logger.WithContextExtractors(requestid.LogExtractor),
//	)
//	log.InfoContext(ctx, "query extracted",
//	    logger.Operation("query"),
//	    logger.URL(rawURL),
//	    logger.Duration(time.Since(start)),
//	)
//
// Error and Errors return an empty attribute for nil errors, which slog
// skips, so they can be passed without a nil check.
package logger
