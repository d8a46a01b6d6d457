package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/urlkit/handler"
	"github.com/dmitrymomot/urlkit/internal/app"
	"github.com/dmitrymomot/urlkit/pkg/clientip"
	"github.com/dmitrymomot/urlkit/pkg/httpserver"
	"github.com/dmitrymomot/urlkit/pkg/logger"
	"github.com/dmitrymomot/urlkit/pkg/navigation"
	"github.com/dmitrymomot/urlkit/pkg/ratelimiter"
	"github.com/dmitrymomot/urlkit/pkg/redis"
	"github.com/dmitrymomot/urlkit/pkg/requestid"
	"github.com/dmitrymomot/urlkit/pkg/urlcodec"
)

// ErrMalformedInput is returned to clients whose input holds a broken
// percent-escape.
var ErrMalformedInput = handler.NewHTTPError(http.StatusBadRequest, "malformed_escape")

// Service exposes the sanitization toolkit over JSON.
type Service struct {
	app      *app.App
	validate *validator.Validate
	errors   handler.ErrorHandler
}

func NewService(a *app.App) *Service {
	return &Service{
		app:      a,
		validate: handler.NewValidator(),
		errors:   handler.NewErrorHandler(a.Log),
	}
}

// Handle returns the router with all middleware installed.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware(s.app.Config.RequestIDHeader))
	r.Use(clientip.Middleware(s.app.Config.TrustedIPHeaders...))
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(navigation.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})

	checks := []httpserver.Check{
		{Name: "codec", Fn: checkCodec},
		{Name: "tag_filter", Fn: s.checkTagFilter},
	}
	if s.app.Redis != nil {
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(s.app.Redis)})
	}
	r.Get("/health", httpserver.HealthHandler(s.app.Log, checks...))

	r.Route("/v1", func(v1 chi.Router) {
		if s.app.Limiter != nil {
			v1.Use(ratelimiter.Middleware(s.app.Limiter, clientKey, http.HandlerFunc(s.rateLimited)))
		}
		v1.Post("/encode", wrap(s, s.encode))
		v1.Post("/decode", wrap(s, s.decode))
		v1.Post("/escape", wrap(s, s.escape))
		v1.Post("/unescape", wrap(s, s.unescape))
		v1.Post("/strip-tags", wrap(s, s.stripTags))
		v1.Post("/text", wrap(s, s.text))
		v1.Post("/trim", wrap(s, s.trim))
		v1.Post("/slug", wrap(s, s.slug))
		v1.Post("/query", wrap(s, s.query))
		v1.Post("/hash", wrap(s, s.hash))
	})

	return r
}

func wrap[R any](s *Service, h handler.HandlerFunc[R]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[R](handler.BindJSON(s.validate, s.app.Config.HTTP.MaxBodyBytes)),
		handler.WithErrorHandler[R](s.errors),
		handler.WithDecorators(timed[R](s.app.Log)),
	)
}

// timed logs how long each operation took at debug level.
func timed[R any](log *slog.Logger) handler.Decorator[R] {
	return func(next handler.HandlerFunc[R]) handler.HandlerFunc[R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			op := ctx.Request().URL.Path
			if rc := chi.RouteContext(ctx); rc != nil {
				op = rc.RoutePattern()
			}
			log.DebugContext(ctx, "operation finished",
				logger.Operation(op),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.app.Log.InfoContext(r.Context(), "http request",
			logger.Component("api"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}

func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

func (s *Service) rateLimited(w http.ResponseWriter, r *http.Request) {
	s.app.Log.WarnContext(r.Context(), "rate limit exceeded", logger.Component("api"))
	_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
}

func checkCodec(context.Context) error {
	const probe = "a b/ä"
	got, err := urlcodec.Decode(urlcodec.Encode(probe))
	if err != nil {
		return err
	}
	if got != probe {
		return errors.New("encode/decode round trip mismatch")
	}
	return nil
}

func (s *Service) checkTagFilter(context.Context) error {
	if got := s.app.Filter.Strip("<!--x--><b>ok</b><i>", "<b>"); got != "<b>ok</b>" {
		return errors.New("tag filter self-test failed")
	}
	return nil
}
