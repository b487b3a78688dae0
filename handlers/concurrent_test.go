// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/models"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/testutil"
)

// TestConcurrentSubmissions verifies that simultaneous submissions from
// different students each land on their own row
func TestConcurrentSubmissions(t *testing.T) {
	numStudents := 10

	rows := [][]string{{"Student", "Category", "Food"}}
	for i := 0; i < numStudents; i++ {
		rows = append(rows, []string{fmt.Sprintf("Student%c", 'A'+i)})
	}

	repo, _ := testutil.SetupTestRepository(t, rows)
	h := NewPotluckHandler(repo, nil)

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numStudents; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/submit", models.SubmitEntryRequest{
				Student:  fmt.Sprintf("Student%c", 'A'+idx),
				Category: "Dessert",
				FoodName: fmt.Sprintf("cake %d", idx),
			}, nil)
			w := httptest.NewRecorder()
			h.SubmitEntry(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			} else {
				t.Errorf("Student %d: unexpected status %d - %s", idx, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numStudents {
		t.Errorf("Expected %d successful submissions, got %d", numStudents, successCount.Load())
	}

	w := httptest.NewRecorder()
	h.ListEntries(w, testutil.MakeRequest("GET", "/api/entries", nil, nil))

	var list models.EntriesResponse
	testutil.AssertJSON(t, w, &list)

	if len(list.Entries) != numStudents {
		t.Fatalf("Expected %d entries, got %d", numStudents, len(list.Entries))
	}
	for _, e := range list.Entries {
		idx := e.RowIndex - 2
		if e.Student != fmt.Sprintf("Student%c", 'A'+idx) || e.FoodName != fmt.Sprintf("Cake %d", idx) {
			t.Errorf("Entry on row %d belongs to someone else: %+v", e.RowIndex, e)
		}
	}
}

// TestConcurrentSameStudent checks last-write-wins on a single row.
// The two cell writes are not atomic, so only the row's presence is asserted.
func TestConcurrentSameStudent(t *testing.T) {
	h, _, _ := newTestHandler(t, false)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/api/submit", models.SubmitEntryRequest{
				Student:  "Alice",
				Category: fmt.Sprintf("Category %d", idx),
				FoodName: fmt.Sprintf("food %d", idx),
			}, nil)
			h.SubmitEntry(httptest.NewRecorder(), req)
		}(i)
	}
	wg.Wait()

	w := httptest.NewRecorder()
	h.ListEntries(w, testutil.MakeRequest("GET", "/api/entries", nil, nil))

	var list models.EntriesResponse
	testutil.AssertJSON(t, w, &list)

	for _, e := range list.Entries {
		if e.Student == "Alice" {
			return
		}
	}
	t.Error("Expected an entry for Alice")
}
