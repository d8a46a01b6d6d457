package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest returns the normalized client IP of r, or "" when none of the
// sources holds a valid address. Trusted headers are checked in order; for a
// comma-separated list such as X-Forwarded-For the first valid entry wins.
func FromRequest(r *http.Request, trusted ...string) string {
	for _, name := range trusted {
		v := r.Header.Get(name)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port.
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
