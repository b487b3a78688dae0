// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/db"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/entries"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/middleware"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/models"
)

// Submissions listing bounds
const (
	DefaultSubmissionsLimit = 50
	MaxSubmissionsLimit     = 500
)

const msgSubmitted = "Entry submitted successfully"

type PotluckHandler struct {
	repo    *entries.Repository
	journal *db.Journal
}

// NewPotluckHandler creates the API handler. journal may be nil.
func NewPotluckHandler(repo *entries.Repository, journal *db.Journal) *PotluckHandler {
	return &PotluckHandler{repo: repo, journal: journal}
}

// ListStudents handles GET /api/students
func (h *PotluckHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.repo.ListStudents(r.Context())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StudentsResponse{
		Students: students,
	})
}

// ListEntries handles GET /api/entries
func (h *PotluckHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListEntries(r.Context())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EntriesResponse{
		Entries: list,
	})
}

// SubmitEntry handles POST /api/submit
// Overwrites the student's category and food name in the sheet.
func (h *PotluckHandler) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, err := h.repo.SubmitEntry(r.Context(), req.Student, req.Category, req.FoodName)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	slog.Info("entry submitted",
		"student", entry.Student,
		"category", entry.Category,
		"food_name", entry.FoodName,
		"row_index", entry.RowIndex,
	)

	// The sheet is already updated; a journal failure only loses the audit row
	if h.journal != nil {
		if _, err := h.journal.Record(entry); err != nil {
			slog.Error("failed to journal submission", "student", entry.Student, "error", err)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitEntryResponse{
		Success: true,
		Message: msgSubmitted,
		Entry: models.SubmittedEntry{
			Student:  entry.Student,
			Category: entry.Category,
			FoodName: entry.FoodName,
		},
	})
}

// ListSubmissions handles GET /api/submissions?limit=N
func (h *PotluckHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	if h.journal == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Submission journal is disabled")
		return
	}

	limit := DefaultSubmissionsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, MaxSubmissionsLimit)
	}

	subs, err := h.journal.Recent(limit)
	if err != nil {
		slog.Error("failed to list submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmissionsResponse{
		Submissions: subs,
	})
}
