// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level and completion with method, path,
client IP, status, response size (humanized) and duration_ms.

# CORS Middleware

Enable cross-origin requests from the configured frontends:

	handler := middleware.CORS(cfg.AllowedOrigins)(mux)

Only listed origins are echoed back. Preflight requests from other origins
get 403. Allows methods GET, POST, PUT, DELETE, OPTIONS.

# Security Headers

	handler = middleware.SecureHeaders(handler)

Sets X-Content-Type-Options, X-Frame-Options, Referrer-Policy and
Cross-Origin-Resource-Policy on every response. The resource policy is
cross-origin so that any frontend allowed by CORS can read the API.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SubmitSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
