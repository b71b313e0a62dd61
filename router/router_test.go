package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/retro-studio/models"
	"github.com/danielhkuo/retro-studio/store"
	"github.com/danielhkuo/retro-studio/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return NewRouter(store.New(conn, models.PolicyAllowMultiple))
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "retro-studio API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// Test that routes respond (handler is invoked)
	// Note: Some routes return 404 when data doesn't exist, which is valid handler behavior
	testCases := []struct {
		method string
		path   string
	}{
		// Health and root
		{"GET", "/health"},
		{"GET", "/"},

		// Pod routes
		{"GET", "/pods"},
		{"POST", "/pods"},
		{"GET", "/pods/test-id"},

		// Upload routes
		{"POST", "/pods/test-id/uploads"},
		{"GET", "/pods/test-id/uploads"},

		// Interaction routes
		{"POST", "/uploads/test-id/interactions"},
		{"GET", "/uploads/test-id/interactions"},
		{"GET", "/uploads/test-id/summary"},

		// Live session routes
		{"POST", "/pods/test-id/live"},
		{"GET", "/pods/test-id/live"},
		{"DELETE", "/pods/test-id/live"},
		{"POST", "/pods/test-id/logout"},

		// Insight review routes
		{"GET", "/retros"},
		{"POST", "/retros"},
		{"POST", "/retros/test-id/insights"},
		{"GET", "/retros/test-id/insights"},
		{"POST", "/insights/test-id/comments"},
		{"GET", "/insights/test-id/comments"},
		{"POST", "/insights/test-id/votes"},
		{"GET", "/insights/test-id/votes/test-user"},
		{"GET", "/insights/test-id/breakdown"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// Route should be matched (not 405 Method Not Allowed for these specific routes)
			// 400 and 404 are valid responses depending on handler logic
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	// Test that unsupported methods on defined routes return 405
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},                // Only GET is defined
		{"DELETE", "/pods/test-id"},        // Only GET is defined
		{"PUT", "/pods/test-id/live"},      // POST/GET/DELETE are defined
		{"DELETE", "/uploads/test-id/summary"}, // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	mux := NewRouter(store.New(conn, models.PolicyAllowMultiple))

	podID := testutil.CreateTestPod(t, conn, "Alpha")

	// Test that {id} parameter extracts correctly
	t.Run("pod ID extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/pods/"+podID, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for existing pod, got %d. Body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("vote user extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/insights/some-insight/votes/bob", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		// Route matched and both params extracted; no such vote exists yet
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404 for missing vote, got %d. Body: %s", w.Code, w.Body.String())
		}
	})
}
