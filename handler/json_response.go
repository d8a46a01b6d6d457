package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(j.status)

	enc := json.NewEncoder(w)
	// Sanitized markup must reach the client byte for byte.
	enc.SetEscapeHTML(false)
	return enc.Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// JSON wraps v in the data field. Passing an error is the same as JSONError.
func JSON(v any, opts ...JSONOption) Response {
	if err, ok := v.(error); ok {
		return JSONError(err, opts...)
	}

	r := &jsonResponse{status: http.StatusOK}
	if env, ok := v.(JSONResponse); ok {
		r.body = env
	} else {
		r.body.Data = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err in the error field with the status derived from it.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{}
	r.status, r.body.Error = errorDetail(err)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorDetail classifies err. ValidationError wins over HTTPError; anything
// else is an internal error whose message is not exposed.
func errorDetail(err error) (int, *ErrorDetail) {
	var verr ValidationError
	if errors.As(err, &verr) {
		d := &ErrorDetail{Code: "validation_error", Message: verr.Error()}
		if len(verr) > 0 {
			d.Details = make(map[string][]string, len(verr))
			maps.Copy(d.Details, verr)
		}
		return http.StatusUnprocessableEntity, d
	}

	var herr HTTPError
	if errors.As(err, &herr) {
		msg := http.StatusText(herr.Code)
		if cause := unwrapCause(err, herr); cause != "" {
			msg = cause
		}
		return herr.Code, &ErrorDetail{Code: herr.Key, Message: msg}
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

// unwrapCause returns the message of the errors joined next to herr, so
// client errors carry their reason ("invalid JSON body: ...").
func unwrapCause(err error, herr HTTPError) string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return ""
	}
	for _, e := range joined.Unwrap() {
		if e == nil {
			continue
		}
		if h, ok := e.(HTTPError); ok && h == herr {
			continue
		}
		return e.Error()
	}
	return ""
}

// Empty responds with 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

type emptyResponse struct{ status int }

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}
