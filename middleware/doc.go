// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /{$}", middleware.WithLogging(handler))

Every request gets an ID, taken from an incoming X-Request-ID header or
generated as a UUID, and echoed in the response's X-Request-ID header.
Start is logged at debug (method, path, remote); completion at info
(status, duration_ms).

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
