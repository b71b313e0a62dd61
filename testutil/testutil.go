// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/retro-studio/db"
	"github.com/danielhkuo/retro-studio/models"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full schema.
// Each test gets its own database; Close is registered as a cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(":memory:", db.DialectSQLite)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// CreateTestPod inserts a pod and returns its ID.
func CreateTestPod(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	podID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO pods (id, name, description)
		VALUES ($1, $2, 'A test pod')
	`, podID, name)
	if err != nil {
		t.Fatalf("Failed to create test pod: %v", err)
	}

	return podID
}

// CreateTestUpload inserts an upload and returns its ID.
func CreateTestUpload(t *testing.T, conn *sql.DB, podID, userName, fileName, timestamp string) string {
	t.Helper()

	uploadID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO uploads (id, pod_id, user_name, upload_type, file_data, file_name, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uploadID, podID, userName, models.UploadVideo, []byte("test-bytes"), fileName, timestamp)
	if err != nil {
		t.Fatalf("Failed to create test upload: %v", err)
	}

	return uploadID
}

// AddTestInteraction inserts an interaction row directly.
func AddTestInteraction(t *testing.T, conn *sql.DB, uploadID, userName, kind, content string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO interactions (upload_id, user_name, interaction_type, content, timestamp)
		VALUES ($1, $2, $3, $4, '2025-01-01 10:00')
	`, uploadID, userName, kind, content)
	if err != nil {
		t.Fatalf("Failed to create test interaction: %v", err)
	}
}

// CreateTestRetro inserts a retro and returns its ID.
func CreateTestRetro(t *testing.T, conn *sql.DB, title string) string {
	t.Helper()

	retroID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO retros (id, title, date, host)
		VALUES ($1, $2, '2025-01-15', 'TestHost')
	`, retroID, title)
	if err != nil {
		t.Fatalf("Failed to create test retro: %v", err)
	}

	return retroID
}

// CreateTestInsight inserts an insight and returns its ID.
func CreateTestInsight(t *testing.T, conn *sql.DB, retroID, title string) string {
	t.Helper()

	insightID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO insights (id, retro_id, title, explanation, confidence, next_steps, status)
		VALUES ($1, $2, $3, 'because', 'Medium', 'follow up', 'open')
	`, insightID, retroID, title)
	if err != nil {
		t.Fatalf("Failed to create test insight: %v", err)
	}

	return insightID
}

// CountRows returns the number of rows in table matching column = value.
func CountRows(t *testing.T, conn *sql.DB, table, column, value string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE `+column+` = $1`, value).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
