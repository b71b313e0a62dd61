package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/retro-studio/models"
	"github.com/danielhkuo/retro-studio/testutil"
)

func TestLiveSessionLifecycle(t *testing.T) {
	conn, st := newTestStore(t)
	handler := NewLiveHandler(st)

	podID := testutil.CreateTestPod(t, conn, "Alpha")
	uploadID := testutil.CreateTestUpload(t, conn, podID, "alice", "demo.mp4", "2025-01-01 10:00")

	getLive := func(t *testing.T) models.LiveSessionResponse {
		t.Helper()
		req := testutil.MakeRequest("GET", "/pods/"+podID+"/live", nil, nil)
		req.SetPathValue("id", podID)
		w := httptest.NewRecorder()
		handler.GetLive(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.LiveSessionResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	// Fresh pod is idle.
	if resp := getLive(t); resp.Live {
		t.Errorf("Expected fresh pod to be idle, got live session %+v", resp)
	}

	// Go live.
	req := testutil.MakeRequest("POST", "/pods/"+podID+"/live", models.GoLiveRequest{
		UploadID: uploadID,
		HostName: "alice",
	}, nil)
	req.SetPathValue("id", podID)
	w := httptest.NewRecorder()
	handler.GoLive(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	resp := getLive(t)
	if !resp.Live {
		t.Fatal("Expected pod to be live after GoLive")
	}
	if resp.Upload == nil || resp.Upload.ID != uploadID {
		t.Errorf("Expected live upload %q, got %+v", uploadID, resp.Upload)
	}
	if resp.HostName != "alice" {
		t.Errorf("Expected host alice, got %q", resp.HostName)
	}

	// End it.
	req = testutil.MakeRequest("DELETE", "/pods/"+podID+"/live", nil, nil)
	req.SetPathValue("id", podID)
	w = httptest.NewRecorder()
	handler.EndSession(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if resp := getLive(t); resp.Live {
		t.Error("Expected pod to be idle after EndSession")
	}
}

func TestGoLiveValidation(t *testing.T) {
	conn, st := newTestStore(t)
	handler := NewLiveHandler(st)

	podID := testutil.CreateTestPod(t, conn, "Alpha")
	otherPodID := testutil.CreateTestPod(t, conn, "Bravo")
	foreignUploadID := testutil.CreateTestUpload(t, conn, otherPodID, "bob", "other.mp4", "2025-01-01 10:00")

	tests := []struct {
		name           string
		podID          string
		requestBody    models.GoLiveRequest
		expectedStatus int
	}{
		{
			name:           "missing upload_id",
			podID:          podID,
			requestBody:    models.GoLiveRequest{HostName: "alice"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing host_name",
			podID:          podID,
			requestBody:    models.GoLiveRequest{UploadID: foreignUploadID},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "upload from another pod",
			podID:          podID,
			requestBody:    models.GoLiveRequest{UploadID: foreignUploadID, HostName: "alice"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown upload",
			podID:          podID,
			requestBody:    models.GoLiveRequest{UploadID: "missing", HostName: "alice"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/pods/"+tt.podID+"/live", tt.requestBody, nil)
			req.SetPathValue("id", tt.podID)
			w := httptest.NewRecorder()

			handler.GoLive(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// None of the rejected attempts should have left the pod live.
	req := testutil.MakeRequest("GET", "/pods/"+podID+"/live", nil, nil)
	req.SetPathValue("id", podID)
	w := httptest.NewRecorder()
	handler.GetLive(w, req)

	var resp models.LiveSessionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Live {
		t.Error("Expected pod to stay idle after rejected GoLive attempts")
	}
}

func TestLogoutClearsOwnSessionOnly(t *testing.T) {
	conn, st := newTestStore(t)
	handler := NewLiveHandler(st)

	podID := testutil.CreateTestPod(t, conn, "Alpha")
	uploadID := testutil.CreateTestUpload(t, conn, podID, "alice", "demo.mp4", "2025-01-01 10:00")

	goLive := func(t *testing.T) {
		t.Helper()
		req := testutil.MakeRequest("POST", "/pods/"+podID+"/live", models.GoLiveRequest{
			UploadID: uploadID,
			HostName: "alice",
		}, nil)
		req.SetPathValue("id", podID)
		w := httptest.NewRecorder()
		handler.GoLive(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	logout := func(t *testing.T, user string) {
		t.Helper()
		req := testutil.MakeRequest("POST", "/pods/"+podID+"/logout", models.LogoutRequest{UserName: user}, nil)
		req.SetPathValue("id", podID)
		w := httptest.NewRecorder()
		handler.Logout(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	isLive := func(t *testing.T) bool {
		t.Helper()
		req := testutil.MakeRequest("GET", "/pods/"+podID+"/live", nil, nil)
		req.SetPathValue("id", podID)
		w := httptest.NewRecorder()
		handler.GetLive(w, req)

		var resp models.LiveSessionResponse
		testutil.AssertJSON(t, w, &resp)
		return resp.Live
	}

	goLive(t)

	// A non-host logging out leaves the session running.
	logout(t, "bob")
	if !isLive(t) {
		t.Fatal("Expected session to survive a non-host logout")
	}

	// The host logging out ends it.
	logout(t, "alice")
	if isLive(t) {
		t.Error("Expected session to end when the host logs out")
	}
}
