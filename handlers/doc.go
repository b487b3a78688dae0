// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the potluck sign-up API.

# Handler Types

  - PotluckHandler: students, entries, submissions (sheet + optional journal)
  - PageHandler: the sign-up page and its static assets

Handlers are created via constructor functions:

	potluck := handlers.NewPotluckHandler(repo, journal) // journal may be nil
	page := handlers.NewPageHandler(web.Index(), web.Static())

# Endpoints

	GET  /api/students    → ListStudents
	GET  /api/entries     → ListEntries
	POST /api/submit      → SubmitEntry
	GET  /api/submissions → ListSubmissions (journal only)

Every call re-reads the worksheet. SubmitEntry finds the student's row by
name and overwrites the category and food name there; concurrent submits for
the same student are last-write-wins.

# Errors

Error kinds from the entries and sheet packages are mapped to status codes by
middleware.WriteError. Malformed JSON bodies are rejected with
400 {"error": "Invalid JSON"} before the sheet is touched.

A journal write that fails after the sheet was updated is logged and the
request still succeeds.
*/
package handlers
