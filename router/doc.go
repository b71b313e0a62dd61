// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

NewRouter wires every handler onto a stdlib ServeMux using Go 1.22+
method-and-path patterns:

	mux := router.NewRouter(st)
	http.ListenAndServe(addr, middleware.CORS(mux))

Every route except /health and the root banner is wrapped with
middleware.WithLogging. See package handlers for the full endpoint list.
*/
package router
