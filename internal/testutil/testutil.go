package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OpenTestPool connects to TEST_DATABASE_URL and drops the application tables
// so each test starts from a database where nothing was created yet. Tests
// are skipped when the variable is unset.
func OpenTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	addr := os.Getenv("TEST_DATABASE_URL")
	if addr == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres test")
	}

	pool, err := pgxpool.New(context.Background(), addr)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `
		DROP TABLE IF EXISTS avaliacoes CASCADE;
		DROP TABLE IF EXISTS usuarios CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	return pool
}

// MakeRequest creates an HTTP test request with an optional JSON body.
func MakeRequest(method, path string, body any) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into v.
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
