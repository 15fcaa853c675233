// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(request_id, duration_ms). The request id is taken from X-Request-ID when
the caller sends one, otherwise a new UUID is generated, and it is always
echoed back in the response header.

# Response Helpers

	middleware.TextResponse(w, http.StatusOK, "Poll generated")
	middleware.JSONResponse(w, http.StatusOK, resp)
	middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")

ErrorResponse writes models.ErrorResponse with the standard status text in
the error field.
*/
package middleware
