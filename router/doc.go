// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the potluck sign-up service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(repo, journal)
	server := http.Server{Handler: middleware.CORS(mux)}

# Endpoints

Health:

	GET /health

Page:

	GET /          - Sign-up page
	GET /static/   - Page assets

API:

	GET  /api/students    - Roster names
	GET  /api/entries     - Completed sign-ups
	POST /api/submit      - Set a student's category and food
	GET  /api/submissions - Journal, newest first (only when a journal is configured)
*/
package router
