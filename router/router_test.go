// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/db"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/middleware"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/models"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/testutil"
)

func newTestRouter(t *testing.T, withJournal bool) *http.ServeMux {
	t.Helper()

	repo, _ := testutil.SetupTestRepository(t, testutil.Roster)
	var journal *db.Journal
	if withJournal {
		journal = db.NewJournal(testutil.SetupTestDB(t))
	}
	return NewRouter(repo, journal)
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t, false)

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

func TestRootServesPage(t *testing.T) {
	mux := newTestRouter(t, false)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/static/script.js") {
		t.Error("Expected page to load the sign-up script")
	}
}

func TestStaticAssets(t *testing.T) {
	mux := newTestRouter(t, false)

	for _, path := range []string{"/static/script.js", "/static/style.css"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200 for %s, got %d", path, w.Code)
			}
		})
	}
}

func TestUnknownPathNotFound(t *testing.T) {
	mux := newTestRouter(t, false)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t, true)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/api/students"},
		{"GET", "/api/entries"},
		{"POST", "/api/submit"},
		{"GET", "/api/submissions"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// POST /api/submit with no body is a 400, which still means the route matched
			if w.Code == http.StatusMethodNotAllowed || w.Code == http.StatusNotFound {
				t.Errorf("Route %s %s returned %d, expected route handler to exist", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestSubmissionsRouteRequiresJournal(t *testing.T) {
	mux := newTestRouter(t, false)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/submissions", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 without a journal, got %d", w.Code)
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	mux := newTestRouter(t, false)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"GET to submit endpoint", "GET", "/api/submit", http.StatusMethodNotAllowed},
		{"POST to students endpoint", "POST", "/api/students", http.StatusMethodNotAllowed},
		{"DELETE entries", "DELETE", "/api/entries", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestSubmitThroughRouter(t *testing.T) {
	handler := middleware.CORS(newTestRouter(t, true))

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/submit", nil)
		req.Header.Set("Origin", "http://localhost:5001")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
	})

	t.Run("alice brings apple pie", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/submit", models.SubmitEntryRequest{
			Student:  "Alice",
			Category: "Dessert",
			FoodName: "apple PIE",
		}, nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.SubmitEntryResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Entry.FoodName != "Apple Pie" {
			t.Errorf("Expected 'Apple Pie', got '%s'", resp.Entry.FoodName)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected CORS header on API response")
		}
	})

	t.Run("zed is not on the roster", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/submit", models.SubmitEntryRequest{
			Student:  "Zed",
			Category: "Main",
			FoodName: "Stew",
		}, nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Error != "Student not found" {
			t.Errorf("Expected 'Student not found', got '%s'", resp.Error)
		}
	})
}
