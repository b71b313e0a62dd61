// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Request Logging

WithLogging wraps a handler with start/complete slog entries including
method, path, and duration:

	mux.HandleFunc("GET /pods", middleware.WithLogging(h.ListPods))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusNotFound, "Pod not found")
	middleware.ParseJSONBody(r, &req)

ErrorResponse emits the models.ErrorResponse shape:

	{"error": "Not Found", "message": "Pod not found"}

# CORS

CORS wraps the whole mux and reflects the Origin header, answering
preflight OPTIONS requests directly.
*/
package middleware
