// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value decoded by one or more
// Bind functions and returns a Response:
//
//	type EncodeRequest struct {
//	    Text string `json:"text" validate:"max=65536"`
//	}
//
//	encode := func(ctx handler.Context, req EncodeRequest) handler.Response {
//	    return handler.JSON(map[string]string{"result": urlcodec.Encode(req.Text)})
//	}
//
//	r.Post("/v1/encode", handler.Wrap(encode,
//	    handler.WithBinders[EncodeRequest](handler.BindJSON(handler.NewValidator(), 0)),
//	    handler.WithErrorHandler[EncodeRequest](handler.NewErrorHandler(log)),
//	))
//
// BindJSON is strict: it requires an application/json content type, rejects
// unknown fields and trailing data, and validates the result with
// go-playground/validator. It never alters string values.
//
// Errors map to responses as follows: ValidationError becomes 422 with
// per-field details, HTTPError uses its own code and key, and anything else
// is a 500 with a generic message. Context.Navigation exposes the request's
// navigation.Provider for URL extractors that fall back to the current
// location.
package handler
