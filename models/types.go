// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// TimestampLayout is the storage format for all timestamps.
// Minute resolution, lexicographically sortable.
const TimestampLayout = "2006-01-02 15:04"

// Upload type constants
const (
	UploadVideo     = "Video"
	UploadPPT       = "PPT"
	UploadRecording = "Recording"
)

// Interaction kind constants
const (
	KindReaction = "reaction"
	KindVote     = "vote"
	KindComment  = "comment"
)

// Pod-style vote values
const (
	VoteKeep = "Keep"
	VoteKill = "Kill"
)

// Insight confidence levels
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// Insight vote usefulness values
const (
	UsefulnessNot      = "NotUseful"
	UsefulnessSomewhat = "SomewhatUseful"
	UsefulnessVery     = "VeryUseful"
)

// Insight vote decisions
const (
	DecisionGood = "Good"
	DecisionKill = "Kill"
)

// Vote policy constants for pod-style votes and reactions
const (
	PolicyAllowMultiple = "allow-multiple"
	PolicyDedupePerUser = "dedupe-per-user"
)

// Request types

type CreatePodRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FileData travels as base64; encoding/json handles the conversion.
type CreateUploadRequest struct {
	UserName   string `json:"user_name"`
	UploadType string `json:"upload_type"`
	FileName   string `json:"file_name"`
	FileData   []byte `json:"file_data"`
}

type AddInteractionRequest struct {
	UserName string `json:"user_name"`
	Kind     string `json:"kind"`
	Content  string `json:"content"`
}

type GoLiveRequest struct {
	UploadID string `json:"upload_id"`
	HostName string `json:"host_name"`
}

type LogoutRequest struct {
	UserName string `json:"user_name"`
}

type CreateRetroRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Host  string `json:"host"`
}

type CreateInsightRequest struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Confidence  string `json:"confidence"`
	NextSteps   string `json:"next_steps"`
	Media       []byte `json:"media,omitempty"`
}

type AddInsightCommentRequest struct {
	Author  string `json:"author"`
	Comment string `json:"comment"`
}

type SubmitInsightVoteRequest struct {
	UserID     string `json:"user_id"`
	Depth      int    `json:"depth"`
	Usefulness string `json:"usefulness"`
	Decision   string `json:"decision"`
}

// Response types

type CreateUploadResponse struct {
	UploadID string `json:"upload_id"`
}

type LiveSessionResponse struct {
	Live     bool    `json:"live"`
	Upload   *Upload `json:"upload,omitempty"`
	HostName string  `json:"host_name,omitempty"`
}

type UploadSummaryResponse struct {
	UploadID  string         `json:"upload_id"`
	Votes     map[string]int `json:"votes"`
	Reactions map[string]int `json:"reactions"`
	Comments  []Interaction  `json:"comments"`
	AISummary string         `json:"ai_summary"`
}

type InsightVoteBreakdownResponse struct {
	InsightID string         `json:"insight_id"`
	Decisions map[string]int `json:"decisions"`
}

// Domain types

type Pod struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	LiveUploadID *string `json:"live_upload_id,omitempty"`
	LiveHostName *string `json:"live_host_name,omitempty"`
}

type Upload struct {
	ID         string `json:"id"`
	PodID      string `json:"pod_id"`
	UserName   string `json:"user_name"`
	UploadType string `json:"upload_type"`
	FileData   []byte `json:"file_data,omitempty"`
	FileName   string `json:"file_name"`
	Timestamp  string `json:"timestamp"`
}

type Interaction struct {
	ID        int64  `json:"id"`
	UploadID  string `json:"upload_id"`
	UserName  string `json:"user_name"`
	Kind      string `json:"kind"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type Retro struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Host  string `json:"host"`
}

type Insight struct {
	ID          string `json:"id"`
	RetroID     string `json:"retro_id"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Confidence  string `json:"confidence"`
	NextSteps   string `json:"next_steps"`
	Status      string `json:"status"`
	Media       []byte `json:"media,omitempty"`
}

type InsightComment struct {
	ID        int64  `json:"id"`
	InsightID string `json:"insight_id"`
	Author    string `json:"author"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"`
}

type InsightVote struct {
	ID         int64  `json:"id"`
	InsightID  string `json:"insight_id"`
	UserID     string `json:"user_id"`
	Depth      int    `json:"depth"`
	Usefulness string `json:"usefulness"`
	Decision   string `json:"decision"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
