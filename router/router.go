// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/db"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/entries"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/handlers"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/middleware"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/web"
)

// NewRouter registers every route. journal may be nil, in which case
// /api/submissions is not registered.
func NewRouter(repo *entries.Repository, journal *db.Journal) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	potluckHandler := handlers.NewPotluckHandler(repo, journal)
	pageHandler := handlers.NewPageHandler(web.Index(), web.Static())

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sign-up page
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Index))
	mux.Handle("GET /static/", pageHandler.Static())

	// Sheet-backed API
	mux.HandleFunc("GET /api/students", middleware.WithLogging(potluckHandler.ListStudents))
	mux.HandleFunc("GET /api/entries", middleware.WithLogging(potluckHandler.ListEntries))
	mux.HandleFunc("POST /api/submit", middleware.WithLogging(potluckHandler.SubmitEntry))

	// Submission journal
	if journal != nil {
		mux.HandleFunc("GET /api/submissions", middleware.WithLogging(potluckHandler.ListSubmissions))
	}

	return mux
}
