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

type InsightHandler struct {
	store *store.Store
}

func NewInsightHandler(st *store.Store) *InsightHandler {
	return &InsightHandler{store: st}
}

// CreateRetro handles POST /retros
func (h *InsightHandler) CreateRetro(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRetroRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Host == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "host is required")
		return
	}

	retro, err := h.store.CreateRetro(req.Title, req.Date, req.Host)
	if err != nil {
		writeStoreError(w, err, "failed to create retro")
		return
	}

	slog.Info("retro created", "retro_id", retro.ID, "host", retro.Host)

	middleware.JSONResponse(w, http.StatusCreated, retro)
}

// ListRetros handles GET /retros
func (h *InsightHandler) ListRetros(w http.ResponseWriter, r *http.Request) {
	retros, err := h.store.ListRetros()
	if err != nil {
		writeStoreError(w, err, "failed to list retros")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, retros)
}

// CreateInsight handles POST /retros/:id/insights
func (h *InsightHandler) CreateInsight(w http.ResponseWriter, r *http.Request) {
	retroID := r.PathValue("id")
	if retroID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "retro_id is required")
		return
	}

	var req models.CreateInsightRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	switch req.Confidence {
	case models.ConfidenceLow, models.ConfidenceMedium, models.ConfidenceHigh:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "confidence must be Low, Medium, or High")
		return
	}

	insight, err := h.store.CreateInsight(retroID, req.Title, req.Explanation, req.Confidence, req.NextSteps, req.Media)
	if err != nil {
		writeStoreError(w, err, "failed to create insight")
		return
	}

	slog.Info("insight created", "insight_id", insight.ID, "retro_id", retroID)

	middleware.JSONResponse(w, http.StatusCreated, insight)
}

// ListInsights handles GET /retros/:id/insights
func (h *InsightHandler) ListInsights(w http.ResponseWriter, r *http.Request) {
	retroID := r.PathValue("id")
	if retroID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "retro_id is required")
		return
	}

	insights, err := h.store.ListInsights(retroID)
	if err != nil {
		writeStoreError(w, err, "failed to list insights")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, insights)
}

// AddComment handles POST /insights/:id/comments
func (h *InsightHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	insightID := r.PathValue("id")
	if insightID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "insight_id is required")
		return
	}

	var req models.AddInsightCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Comment == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "comment is required")
		return
	}

	if err := h.store.AddInsightComment(insightID, req.Author, req.Comment); err != nil {
		writeStoreError(w, err, "failed to add insight comment")
		return
	}

	slog.Info("insight comment added", "insight_id", insightID, "author", req.Author)

	middleware.JSONResponse(w, http.StatusCreated, map[string]string{
		"message": "Comment recorded",
	})
}

// ListComments handles GET /insights/:id/comments
func (h *InsightHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	insightID := r.PathValue("id")
	if insightID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "insight_id is required")
		return
	}

	comments, err := h.store.ListInsightComments(insightID)
	if err != nil {
		writeStoreError(w, err, "failed to list insight comments")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, comments)
}

// SubmitVote handles POST /insights/:id/votes
// Insert-or-update: a member resubmitting the form overwrites their
// previous vote rather than adding a second one.
func (h *InsightHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	insightID := r.PathValue("id")
	if insightID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "insight_id is required")
		return
	}

	var req models.SubmitInsightVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Depth < 1 || req.Depth > 10 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "depth must be between 1 and 10")
		return
	}
	switch req.Usefulness {
	case models.UsefulnessNot, models.UsefulnessSomewhat, models.UsefulnessVery:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "usefulness must be NotUseful, SomewhatUseful, or VeryUseful")
		return
	}
	switch req.Decision {
	case models.DecisionGood, models.DecisionKill:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "decision must be Good or Kill")
		return
	}

	if err := h.store.UpsertVote(insightID, req.UserID, req.Depth, req.Usefulness, req.Decision); err != nil {
		writeStoreError(w, err, "failed to submit vote")
		return
	}

	slog.Info("insight vote recorded", "insight_id", insightID, "user_id", req.UserID, "decision", req.Decision)

	middleware.JSONResponse(w, http.StatusCreated, map[string]string{
		"message": "Vote recorded",
	})
}

// GetVote handles GET /insights/:id/votes/:user
func (h *InsightHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	insightID := r.PathValue("id")
	userID := r.PathValue("user")
	if insightID == "" || userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "insight_id and user are required")
		return
	}

	vote, err := h.store.GetVote(insightID, userID)
	if err != nil {
		writeStoreError(w, err, "failed to query vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// GetBreakdown handles GET /insights/:id/breakdown
func (h *InsightHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	insightID := r.PathValue("id")
	if insightID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "insight_id is required")
		return
	}

	decisions, err := h.store.VoteBreakdown(insightID)
	if err != nil {
		writeStoreError(w, err, "failed to count votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.InsightVoteBreakdownResponse{
		InsightID: insightID,
		Decisions: decisions,
	})
}
