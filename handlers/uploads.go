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

type UploadHandler struct {
	store *store.Store
}

func NewUploadHandler(st *store.Store) *UploadHandler {
	return &UploadHandler{store: st}
}

// CreateUpload handles POST /pods/:id/uploads
func (h *UploadHandler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	podID := r.PathValue("id")
	if podID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pod_id is required")
		return
	}

	var req models.CreateUploadRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_name is required")
		return
	}
	if req.FileName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file_name is required")
		return
	}
	switch req.UploadType {
	case models.UploadVideo, models.UploadPPT, models.UploadRecording:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "upload_type must be Video, PPT, or Recording")
		return
	}

	up, err := h.store.CreateUpload(podID, req.UserName, req.UploadType, req.FileData, req.FileName)
	if err != nil {
		writeStoreError(w, err, "failed to create upload")
		return
	}

	slog.Info("upload created", "upload_id", up.ID, "pod_id", podID, "user", req.UserName, "type", req.UploadType)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateUploadResponse{
		UploadID: up.ID,
	})
}

// ListUploads handles GET /pods/:id/uploads
// ?order=desc returns newest first; default is oldest first.
func (h *UploadHandler) ListUploads(w http.ResponseWriter, r *http.Request) {
	podID := r.PathValue("id")
	if podID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pod_id is required")
		return
	}

	if _, err := h.store.GetPod(podID); err != nil {
		writeStoreError(w, err, "failed to query pod")
		return
	}

	descending := r.URL.Query().Get("order") == "desc"
	uploads, err := h.store.ListUploads(podID, descending)
	if err != nil {
		writeStoreError(w, err, "failed to list uploads")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, uploads)
}
