package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/urlkit/pkg/logger"
)

// NewErrorHandler returns an ErrorHandler that logs the failure, at warn level
// for client errors and error level otherwise, and renders it as JSON.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx Context, err error) {
		status, _ := errorDetail(err)

		level := slog.LevelError
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		r := ctx.Request()
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Component("handler"),
			logger.Error(err),
			slog.Int("status", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if rerr := JSONError(err).Render(ctx.ResponseWriter(), r); rerr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "render error response",
				logger.Component("handler"),
				logger.Error(rerr),
			)
		}
	}
}
