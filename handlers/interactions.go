// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/retro-studio/middleware"
	"github.com/danielhkuo/retro-studio/models"
	"github.com/danielhkuo/retro-studio/store"
)

type InteractionHandler struct {
	store *store.Store
}

func NewInteractionHandler(st *store.Store) *InteractionHandler {
	return &InteractionHandler{store: st}
}

// AddInteraction handles POST /uploads/:id/interactions
func (h *InteractionHandler) AddInteraction(w http.ResponseWriter, r *http.Request) {
	uploadID := r.PathValue("id")
	if uploadID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "upload_id is required")
		return
	}

	var req models.AddInteractionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch req.Kind {
	case models.KindReaction, models.KindVote, models.KindComment:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "kind must be reaction, vote, or comment")
		return
	}

	if err := h.store.AddInteraction(uploadID, req.UserName, req.Kind, req.Content); err != nil {
		writeStoreError(w, err, "failed to add interaction")
		return
	}

	slog.Info("interaction recorded", "upload_id", uploadID, "user", req.UserName, "kind", req.Kind)

	middleware.JSONResponse(w, http.StatusCreated, map[string]string{
		"message": "Your " + req.Kind + " has been recorded",
	})
}

// GetInteractions handles GET /uploads/:id/interactions
// ?kind= filters by interaction type.
func (h *InteractionHandler) GetInteractions(w http.ResponseWriter, r *http.Request) {
	uploadID := r.PathValue("id")
	if uploadID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "upload_id is required")
		return
	}

	if _, err := h.store.GetUpload(uploadID); err != nil {
		writeStoreError(w, err, "failed to query upload")
		return
	}

	kind := r.URL.Query().Get("kind")
	interactions, err := h.store.GetInteractions(uploadID, kind)
	if err != nil {
		writeStoreError(w, err, "failed to list interactions")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, interactions)
}

// GetSummary handles GET /uploads/:id/summary
// Aggregates votes, reactions, the comment log, and the "AI" summary text.
func (h *InteractionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	uploadID := r.PathValue("id")
	if uploadID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "upload_id is required")
		return
	}

	if _, err := h.store.GetUpload(uploadID); err != nil {
		writeStoreError(w, err, "failed to query upload")
		return
	}

	votes, err := h.store.VoteTally(uploadID)
	if err != nil {
		writeStoreError(w, err, "failed to tally votes")
		return
	}

	reactions, err := h.store.ReactionTally(uploadID)
	if err != nil {
		writeStoreError(w, err, "failed to tally reactions")
		return
	}

	comments, err := h.store.GetInteractions(uploadID, models.KindComment)
	if err != nil {
		writeStoreError(w, err, "failed to list comments")
		return
	}

	unique, err := h.store.CommentSummary(uploadID)
	if err != nil {
		writeStoreError(w, err, "failed to summarize comments")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UploadSummaryResponse{
		UploadID:  uploadID,
		Votes:     votes,
		Reactions: reactions,
		Comments:  comments,
		AISummary: formatAISummary(unique),
	})
}

// formatAISummary renders the unique comment bodies as a bullet list, one
// line per distinct comment in first-seen order. Not real summarization.
func formatAISummary(comments []string) string {
	if len(comments) == 0 {
		return "No comments yet to summarize."
	}
	var b strings.Builder
	for _, c := range comments {
		b.WriteString("- ")
		b.WriteString(c)
		b.WriteString("\n")
	}
	return b.String()
}
