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

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/db"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/entries"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/sheet"
)

// Roster is the default worksheet used by handler and router tests
var Roster = [][]string{
	{"Student", "Category", "Food"},
	{"Alice"},
	{"Bob", "Main Dish", "Chicken Adobo"},
	{" Carol ", "", ""},
	{"Dan", "Dessert", ""},
}

// SetupTestSheet returns a client over an in-memory workbook holding rows.
// Row 1 is the header.
func SetupTestSheet(t *testing.T, rows [][]string) *sheet.Client {
	t.Helper()

	backend, err := sheet.NewMemoryWorkbook(rows)
	if err != nil {
		t.Fatalf("Failed to create test workbook: %v", err)
	}

	client := sheet.NewClient(backend)
	t.Cleanup(func() { client.Close() })
	return client
}

// SetupTestRepository returns a repository backed by SetupTestSheet
func SetupTestRepository(t *testing.T, rows [][]string) (*entries.Repository, *sheet.Client) {
	t.Helper()

	client := SetupTestSheet(t, rows)
	return entries.NewRepository(client), client
}

// SetupTestDB creates a fresh in-memory journal database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
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
