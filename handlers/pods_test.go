package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/retro-studio/models"
	"github.com/danielhkuo/retro-studio/store"
	"github.com/danielhkuo/retro-studio/testutil"
)

func newTestStore(t *testing.T) (*sql.DB, *store.Store) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return conn, store.New(conn, models.PolicyAllowMultiple)
}

func TestCreatePod(t *testing.T) {
	_, st := newTestStore(t)
	handler := NewPodHandler(st)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, pod *models.Pod)
	}{
		{
			name: "valid pod",
			requestBody: models.CreatePodRequest{
				Name:        "Alpha",
				Description: "first pod",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, pod *models.Pod) {
				if pod.ID == "" {
					t.Error("Expected non-empty pod id")
				}
				if pod.Name != "Alpha" {
					t.Errorf("Expected name Alpha, got %q", pod.Name)
				}
			},
		},
		{
			name:           "missing name",
			requestBody:    models.CreatePodRequest{Description: "no name"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/pods", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.CreatePod(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated && tt.checkResponse != nil {
				var pod models.Pod
				testutil.AssertJSON(t, w, &pod)
				tt.checkResponse(t, &pod)
			}
		})
	}
}

func TestCreatePodDuplicateName(t *testing.T) {
	conn, st := newTestStore(t)
	handler := NewPodHandler(st)

	req := testutil.MakeRequest("POST", "/pods", models.CreatePodRequest{Name: "Alpha"}, nil)
	w := httptest.NewRecorder()
	handler.CreatePod(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	req = testutil.MakeRequest("POST", "/pods", models.CreatePodRequest{Name: "Alpha"}, nil)
	w = httptest.NewRecorder()
	handler.CreatePod(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	if n := testutil.CountRows(t, conn, "pods", "name", "Alpha"); n != 1 {
		t.Errorf("Expected exactly 1 pod named Alpha, got %d", n)
	}
}

func TestGetPod(t *testing.T) {
	conn, st := newTestStore(t)
	handler := NewPodHandler(st)

	podID := testutil.CreateTestPod(t, conn, "Alpha")

	t.Run("existing pod", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/pods/"+podID, nil, nil)
		req.SetPathValue("id", podID)
		w := httptest.NewRecorder()

		handler.GetPod(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var pod models.Pod
		testutil.AssertJSON(t, w, &pod)
		if pod.ID != podID {
			t.Errorf("Expected pod %q, got %q", podID, pod.ID)
		}
	})

	t.Run("missing pod", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/pods/missing", nil, nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()

		handler.GetPod(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestListPods(t *testing.T) {
	conn, st := newTestStore(t)
	handler := NewPodHandler(st)

	testutil.CreateTestPod(t, conn, "Bravo")
	testutil.CreateTestPod(t, conn, "Alpha")

	req := testutil.MakeRequest("GET", "/pods", nil, nil)
	w := httptest.NewRecorder()

	handler.ListPods(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var pods []models.Pod
	testutil.AssertJSON(t, w, &pods)
	if len(pods) != 2 {
		t.Fatalf("Expected 2 pods, got %d", len(pods))
	}
	if pods[0].Name != "Alpha" {
		t.Errorf("Expected pods ordered by name, got %q first", pods[0].Name)
	}
}
