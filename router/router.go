// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/retro-studio/handlers"
	"github.com/danielhkuo/retro-studio/middleware"
	"github.com/danielhkuo/retro-studio/store"
)

func NewRouter(st *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	podHandler := handlers.NewPodHandler(st)
	uploadHandler := handlers.NewUploadHandler(st)
	interactionHandler := handlers.NewInteractionHandler(st)
	liveHandler := handlers.NewLiveHandler(st)
	insightHandler := handlers.NewInsightHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pod channels
	mux.HandleFunc("GET /pods", middleware.WithLogging(podHandler.ListPods))
	mux.HandleFunc("POST /pods", middleware.WithLogging(podHandler.CreatePod))
	mux.HandleFunc("GET /pods/{id}", middleware.WithLogging(podHandler.GetPod))

	// Uploads
	mux.HandleFunc("POST /pods/{id}/uploads", middleware.WithLogging(uploadHandler.CreateUpload))
	mux.HandleFunc("GET /pods/{id}/uploads", middleware.WithLogging(uploadHandler.ListUploads))

	// Interactions and summaries
	mux.HandleFunc("POST /uploads/{id}/interactions", middleware.WithLogging(interactionHandler.AddInteraction))
	mux.HandleFunc("GET /uploads/{id}/interactions", middleware.WithLogging(interactionHandler.GetInteractions))
	mux.HandleFunc("GET /uploads/{id}/summary", middleware.WithLogging(interactionHandler.GetSummary))

	// Live review sessions
	mux.HandleFunc("POST /pods/{id}/live", middleware.WithLogging(liveHandler.GoLive))
	mux.HandleFunc("GET /pods/{id}/live", middleware.WithLogging(liveHandler.GetLive))
	mux.HandleFunc("DELETE /pods/{id}/live", middleware.WithLogging(liveHandler.EndSession))
	mux.HandleFunc("POST /pods/{id}/logout", middleware.WithLogging(liveHandler.Logout))

	// Insight review
	mux.HandleFunc("GET /retros", middleware.WithLogging(insightHandler.ListRetros))
	mux.HandleFunc("POST /retros", middleware.WithLogging(insightHandler.CreateRetro))
	mux.HandleFunc("POST /retros/{id}/insights", middleware.WithLogging(insightHandler.CreateInsight))
	mux.HandleFunc("GET /retros/{id}/insights", middleware.WithLogging(insightHandler.ListInsights))
	mux.HandleFunc("POST /insights/{id}/comments", middleware.WithLogging(insightHandler.AddComment))
	mux.HandleFunc("GET /insights/{id}/comments", middleware.WithLogging(insightHandler.ListComments))
	mux.HandleFunc("POST /insights/{id}/votes", middleware.WithLogging(insightHandler.SubmitVote))
	mux.HandleFunc("GET /insights/{id}/votes/{user}", middleware.WithLogging(insightHandler.GetVote))
	mux.HandleFunc("GET /insights/{id}/breakdown", middleware.WithLogging(insightHandler.GetBreakdown))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("retro-studio API v1"))
	})

	return mux
}
