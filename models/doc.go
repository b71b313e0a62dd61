// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePodRequest: name, description
  - CreateUploadRequest: user_name, upload_type, file_name, file_data (base64)
  - AddInteractionRequest: user_name, kind, content
  - GoLiveRequest: upload_id, host_name
  - LogoutRequest: user_name
  - CreateRetroRequest: title, date, host
  - CreateInsightRequest: title, explanation, confidence, next_steps, media
  - AddInsightCommentRequest: author, comment
  - SubmitInsightVoteRequest: user_id, depth, usefulness, decision

# Response Types

  - CreateUploadResponse: upload_id
  - LiveSessionResponse: live, upload, host_name
  - UploadSummaryResponse: votes, reactions, comments, ai_summary
  - InsightVoteBreakdownResponse: decisions per insight
  - ErrorResponse: error, message

# Domain Types

  - Pod: named team channel, optional live session pointer
  - Upload: submitted artifact (video, slide deck, recording) plus raw bytes
  - Interaction: reaction, vote, or comment against an upload
  - Retro / Insight / InsightComment / InsightVote: the insight review model

# Constants

Upload types:

	UploadVideo     = "Video"
	UploadPPT       = "PPT"
	UploadRecording = "Recording"

Interaction kinds:

	KindReaction = "reaction"
	KindVote     = "vote"
	KindComment  = "comment"

Vote policies for pod-style votes and reactions:

	PolicyAllowMultiple = "allow-multiple"
	PolicyDedupePerUser = "dedupe-per-user"

Timestamps are stored as strings in TimestampLayout ("2006-01-02 15:04"),
minute resolution, which sorts correctly as text.
*/
package models
