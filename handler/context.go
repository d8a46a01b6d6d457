package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/urlkit/pkg/navigation"
)

// Context carries the request, the response writer and the navigation
// provider used by URL extractors when the caller gives no explicit URL.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Navigation() navigation.Provider
}

// NewContext wraps w and r. The navigation provider is taken from the request
// context when navigation.Middleware installed one, and built from the
// request URL otherwise.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w   http.ResponseWriter
	r   *http.Request
	nav navigation.Provider
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }

func (c *httpContext) Navigation() navigation.Provider {
	if c.nav == nil {
		if c.nav = navigation.FromContext(c.r.Context()); c.nav == nil {
			c.nav = navigation.FromRequest(c.r)
		}
	}
	return c.nav
}

func (c *httpContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *httpContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *httpContext) Err() error                  { return c.r.Context().Err() }
func (c *httpContext) Value(key any) any           { return c.r.Context().Value(key) }
