// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/retro-studio/middleware"
	"github.com/danielhkuo/retro-studio/models"
	"github.com/danielhkuo/retro-studio/store"
)

type LiveHandler struct {
	store *store.Store
}

func NewLiveHandler(st *store.Store) *LiveHandler {
	return &LiveHandler{store: st}
}

// GoLive handles POST /pods/:id/live
// Transitions the pod from Idle to Live with the selected upload. If a
// session is already running the new one replaces it (last writer wins).
func (h *LiveHandler) GoLive(w http.ResponseWriter, r *http.Request) {
	podID := r.PathValue("id")
	if podID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pod_id is required")
		return
	}

	var req models.GoLiveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UploadID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "upload_id is required")
		return
	}
	if req.HostName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "host_name is required")
		return
	}

	if err := h.store.GoLive(podID, req.UploadID, req.HostName); err != nil {
		writeStoreError(w, err, "failed to start live session")
		return
	}

	slog.Info("live session started", "pod_id", podID, "upload_id", req.UploadID, "host", req.HostName)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Session is live",
	})
}

// EndSession handles DELETE /pods/:id/live
// Any member may end a running session explicitly.
func (h *LiveHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	podID := r.PathValue("id")
	if podID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pod_id is required")
		return
	}

	if err := h.store.EndSession(podID); err != nil {
		writeStoreError(w, err, "failed to end live session")
		return
	}

	slog.Info("live session ended", "pod_id", podID)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Session ended",
	})
}

// GetLive handles GET /pods/:id/live
// Returns the currently presented upload, or live=false when idle. Clients
// poll this on reload; there is no push channel.
func (h *LiveHandler) GetLive(w http.ResponseWriter, r *http.Request) {
	podID := r.PathValue("id")
	if podID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pod_id is required")
		return
	}

	upload, host, err := h.store.LiveUpload(podID)
	if err != nil {
		writeStoreError(w, err, "failed to query live session")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LiveSessionResponse{
		Live:     upload != nil,
		Upload:   upload,
		HostName: host,
	})
}

// Logout handles POST /pods/:id/logout
// The only server-side effect of logout: the live session is cleared when
// the leaving member is the one hosting it. Anyone else's logout is a no-op.
func (h *LiveHandler) Logout(w http.ResponseWriter, r *http.Request) {
	podID := r.PathValue("id")
	if podID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pod_id is required")
		return
	}

	var req models.LogoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_name is required")
		return
	}

	if err := h.store.EndSessionOnLogout(podID, req.UserName); err != nil {
		writeStoreError(w, err, "failed to process logout")
		return
	}

	slog.Info("member logged out", "pod_id", podID, "user", req.UserName)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Logged out",
	})
}
