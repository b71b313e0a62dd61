package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/retro-studio/models"
	"github.com/danielhkuo/retro-studio/testutil"
)

func TestAddInteraction(t *testing.T) {
	conn, st := newTestStore(t)
	handler := NewInteractionHandler(st)

	podID := testutil.CreateTestPod(t, conn, "Alpha")
	uploadID := testutil.CreateTestUpload(t, conn, podID, "alice", "demo.mp4", "2025-01-01 10:00")

	tests := []struct {
		name           string
		uploadID       string
		requestBody    models.AddInteractionRequest
		expectedStatus int
	}{
		{
			name:     "valid comment",
			uploadID: uploadID,
			requestBody: models.AddInteractionRequest{
				UserName: "bob",
				Kind:     models.KindComment,
				Content:  "Nice demo",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:     "valid vote",
			uploadID: uploadID,
			requestBody: models.AddInteractionRequest{
				UserName: "bob",
				Kind:     models.KindVote,
				Content:  models.VoteKeep,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:     "empty user_name",
			uploadID: uploadID,
			requestBody: models.AddInteractionRequest{
				Kind:    models.KindComment,
				Content: "anonymous",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "unknown kind",
			uploadID: uploadID,
			requestBody: models.AddInteractionRequest{
				UserName: "bob",
				Kind:     "applause",
				Content:  "clap",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "missing upload",
			uploadID: "missing",
			requestBody: models.AddInteractionRequest{
				UserName: "bob",
				Kind:     models.KindComment,
				Content:  "lost",
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/uploads/"+tt.uploadID+"/interactions", tt.requestBody, nil)
			req.SetPathValue("id", tt.uploadID)
			w := httptest.NewRecorder()

			handler.AddInteraction(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// A rejected empty user name must leave no row behind.
	if n := testutil.CountRows(t, conn, "interactions", "content", "anonymous"); n != 0 {
		t.Errorf("Expected 0 interactions from empty user_name, got %d", n)
	}
}

func TestGetInteractionsFiltered(t *testing.T) {
	conn, st := newTestStore(t)
	handler := NewInteractionHandler(st)

	podID := testutil.CreateTestPod(t, conn, "Alpha")
	uploadID := testutil.CreateTestUpload(t, conn, podID, "alice", "demo.mp4", "2025-01-01 10:00")
	testutil.AddTestInteraction(t, conn, uploadID, "bob", models.KindComment, "Nice demo")
	testutil.AddTestInteraction(t, conn, uploadID, "carol", models.KindVote, models.VoteKeep)
	testutil.AddTestInteraction(t, conn, uploadID, "dave", models.KindComment, "Too long")

	req := testutil.MakeRequest("GET", "/uploads/"+uploadID+"/interactions?kind=comment", nil, nil)
	req.SetPathValue("id", uploadID)
	w := httptest.NewRecorder()

	handler.GetInteractions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var interactions []models.Interaction
	testutil.AssertJSON(t, w, &interactions)
	if len(interactions) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(interactions))
	}
	if interactions[0].Content != "Nice demo" || interactions[1].Content != "Too long" {
		t.Errorf("Expected comments in arrival order, got %q then %q",
			interactions[0].Content, interactions[1].Content)
	}
}

func TestGetSummary(t *testing.T) {
	conn, st := newTestStore(t)
	handler := NewInteractionHandler(st)

	podID := testutil.CreateTestPod(t, conn, "Alpha")
	uploadID := testutil.CreateTestUpload(t, conn, podID, "alice", "demo.mp4", "2025-01-01 10:00")

	testutil.AddTestInteraction(t, conn, uploadID, "bob", models.KindVote, models.VoteKeep)
	testutil.AddTestInteraction(t, conn, uploadID, "carol", models.KindVote, models.VoteKeep)
	testutil.AddTestInteraction(t, conn, uploadID, "dave", models.KindVote, models.VoteKill)
	testutil.AddTestInteraction(t, conn, uploadID, "bob", models.KindReaction, "👍")
	testutil.AddTestInteraction(t, conn, uploadID, "carol", models.KindComment, "Good pacing")
	testutil.AddTestInteraction(t, conn, uploadID, "dave", models.KindComment, "Good pacing")
	testutil.AddTestInteraction(t, conn, uploadID, "erin", models.KindComment, "Too long")

	req := testutil.MakeRequest("GET", "/uploads/"+uploadID+"/summary", nil, nil)
	req.SetPathValue("id", uploadID)
	w := httptest.NewRecorder()

	handler.GetSummary(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var summary models.UploadSummaryResponse
	testutil.AssertJSON(t, w, &summary)

	if summary.Votes[models.VoteKeep] != 2 || summary.Votes[models.VoteKill] != 1 {
		t.Errorf("Expected votes Keep=2 Kill=1, got %v", summary.Votes)
	}
	if summary.Reactions["👍"] != 1 {
		t.Errorf("Expected 1 thumbs-up reaction, got %v", summary.Reactions)
	}
	if len(summary.Comments) != 3 {
		t.Errorf("Expected 3 comment rows, got %d", len(summary.Comments))
	}

	// Duplicate bodies collapse to one bullet, first-seen order.
	want := "- Good pacing\n- Too long\n"
	if summary.AISummary != want {
		t.Errorf("Expected summary %q, got %q", want, summary.AISummary)
	}
}

func TestGetSummaryNoComments(t *testing.T) {
	conn, st := newTestStore(t)
	handler := NewInteractionHandler(st)

	podID := testutil.CreateTestPod(t, conn, "Alpha")
	uploadID := testutil.CreateTestUpload(t, conn, podID, "alice", "demo.mp4", "2025-01-01 10:00")

	req := testutil.MakeRequest("GET", "/uploads/"+uploadID+"/summary", nil, nil)
	req.SetPathValue("id", uploadID)
	w := httptest.NewRecorder()

	handler.GetSummary(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var summary models.UploadSummaryResponse
	testutil.AssertJSON(t, w, &summary)

	if summary.AISummary != "No comments yet to summarize." {
		t.Errorf("Expected placeholder summary, got %q", summary.AISummary)
	}
}
