package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors". It returns an empty Attr
// when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil err yields an empty Attr, so it can
// be passed unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier. An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation names the sanitization or extraction step being performed,
// e.g. "encode" or "strip-tags".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// URL records the URL an extractor worked on. Empty means the current location.
func URL(raw string) slog.Attr {
	if raw == "" {
		return slog.String("url", "<current>")
	}
	return slog.String("url", raw)
}

// Param records a looked-up parameter name.
func Param(name string) slog.Attr {
	return slog.String("param", name)
}

// Whitelist records a tag whitelist in its canonical form.
func Whitelist(w string) slog.Attr {
	return slog.String("whitelist", w)
}

// InputSize records the length of the processed input in bytes.
func InputSize(n int) slog.Attr {
	return slog.Int("input_size", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
