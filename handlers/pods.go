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

type PodHandler struct {
	store *store.Store
}

func NewPodHandler(st *store.Store) *PodHandler {
	return &PodHandler{store: st}
}

// ListPods handles GET /pods
func (h *PodHandler) ListPods(w http.ResponseWriter, r *http.Request) {
	pods, err := h.store.ListPods()
	if err != nil {
		writeStoreError(w, err, "failed to list pods")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, pods)
}

// CreatePod handles POST /pods
func (h *PodHandler) CreatePod(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePodRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	pod, err := h.store.CreatePod(req.Name, req.Description)
	if err != nil {
		writeStoreError(w, err, "failed to create pod")
		return
	}

	slog.Info("pod created", "pod_id", pod.ID, "name", pod.Name)

	middleware.JSONResponse(w, http.StatusCreated, pod)
}

// GetPod handles GET /pods/:id
func (h *PodHandler) GetPod(w http.ResponseWriter, r *http.Request) {
	podID := r.PathValue("id")
	if podID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pod_id is required")
		return
	}

	pod, err := h.store.GetPod(podID)
	if err != nil {
		writeStoreError(w, err, "failed to query pod")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, pod)
}
