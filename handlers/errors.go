// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/retro-studio/middleware"
	"github.com/danielhkuo/retro-studio/store"
)

// writeStoreError maps store sentinels to HTTP statuses. Anything
// unrecognized is logged and reported as a generic database error.
func writeStoreError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrDuplicateName):
		middleware.ErrorResponse(w, http.StatusConflict, "Name already taken")
	case errors.Is(err, store.ErrCrossPodReference):
		middleware.ErrorResponse(w, http.StatusConflict, "Upload belongs to a different pod")
	case errors.Is(err, store.ErrEmptyUserName):
		middleware.ErrorResponse(w, http.StatusBadRequest, "user name is required")
	default:
		slog.Error(logMsg, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
