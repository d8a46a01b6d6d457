// Package clientip resolves the address of the client behind an HTTP request.
//
// RemoteAddr is used unless the caller names proxy headers it trusts, such as
// X-Forwarded-For or CF-Connecting-IP. Only list headers that the proxy in
// front of the service overwrites; clients can set any header themselves.
//
//	r.Use(clientip.Middleware("X-Forwarded-For"))
//
//	ip := clientip.FromContext(r.Context())
package clientip
