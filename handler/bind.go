package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxBodyBytes caps JSON bodies when BindJSON is given no limit.
const DefaultMaxBodyBytes int64 = 1 << 20

// BindJSON decodes an application/json body into v and validates it.
// Unknown fields and trailing data are rejected. String fields are stored as
// sent; nothing is trimmed or sanitized. A nil validator skips validation and
// maxBytes <= 0 means DefaultMaxBodyBytes.
func BindJSON(v *validator.Validate, maxBytes int64) Bind {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(r *http.Request, dst any) error {
		ct := r.Header.Get("Content-Type")
		if ct == "" {
			return errors.Join(ErrUnsupportedMedia, fmt.Errorf("%w: expected application/json", ErrMissingContentType))
		}
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return errors.Join(ErrUnsupportedMedia, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, ct))
		}

		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBytes))
		dec.DisallowUnknownFields()

		if err := dec.Decode(dst); err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				return errors.Join(ErrEntityTooLarge, ErrBodyTooLarge)
			case errors.Is(err, io.EOF):
				return errors.Join(ErrBadRequest, fmt.Errorf("%w: empty body", ErrInvalidJSON))
			default:
				return errors.Join(ErrBadRequest, fmt.Errorf("%w: %v", ErrInvalidJSON, err))
			}
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return errors.Join(ErrBadRequest, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON))
		}

		if v == nil {
			return nil
		}
		return Validate(v, dst)
	}
}
