// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Retro Studio API.

# Handler Types

Each handler is a struct holding the store:

  - PodHandler: pod channels (list, create, fetch)
  - UploadHandler: artifact submission and listing
  - InteractionHandler: reactions, votes, comments, and the summary view
  - LiveHandler: live review sessions and logout
  - InsightHandler: retros, insights, insight comments and votes

Handlers are created via constructor functions that accept *store.Store:

	podHandler := handlers.NewPodHandler(st)

Handlers validate the request shape (required fields, enum values), then
delegate to the store; they never run SQL themselves.

# Pod Channel Flow

	POST /pods                        → CreatePod (409 on duplicate name)
	GET  /pods                        → ListPods
	GET  /pods/{id}                   → GetPod
	POST /pods/{id}/uploads           → CreateUpload
	GET  /pods/{id}/uploads?order=desc → ListUploads
	POST /uploads/{id}/interactions   → AddInteraction
	GET  /uploads/{id}/interactions?kind= → GetInteractions
	GET  /uploads/{id}/summary        → GetSummary

# Live Sessions

	POST   /pods/{id}/live    → GoLive (409 for an upload from another pod)
	GET    /pods/{id}/live    → GetLive (clients poll; no push channel)
	DELETE /pods/{id}/live    → EndSession
	POST   /pods/{id}/logout  → Logout (clears the session only for the host)

# Insight Review

	POST /retros                      → CreateRetro
	GET  /retros                      → ListRetros
	POST /retros/{id}/insights        → CreateInsight
	GET  /retros/{id}/insights        → ListInsights
	POST /insights/{id}/comments      → AddComment
	GET  /insights/{id}/comments      → ListComments
	POST /insights/{id}/votes         → SubmitVote (one vote per user, revote overwrites)
	GET  /insights/{id}/votes/{user}  → GetVote
	GET  /insights/{id}/breakdown     → GetBreakdown

# Error Mapping

Store sentinels map to statuses in writeStoreError:

	ErrNotFound          → 404
	ErrDuplicateName     → 409
	ErrCrossPodReference → 409
	ErrEmptyUserName     → 400
	anything else        → 500 (logged)
*/
package handlers
