// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Grade 5 potluck sign-up server.

Students pick their name from the class roster and say what they are
bringing. The roster and every sign-up live in one spreadsheet tab: column A
is the student, B the category, C the food. Row 1 is a header.

# Starting the Server

With a Google service account:

	GOOGLE_CREDENTIALS="$(cat key.json)" go run .

Or against a local workbook, no credentials needed:

	go run . -backend xlsx -workbook potluck.xlsx

A .env file in the working directory is loaded first if present.

# Configuration

  - PORT (-p): Server port (default: 5001)
  - SHEET_BACKEND (-backend): google or xlsx (default: google)
  - SPREADSHEET_ID (-sheet): Google spreadsheet key
  - WORKSHEET_ID (-tab): Tab id; the first tab is used when missing
  - GOOGLE_CREDENTIALS: Inline service account JSON, wins over the file
  - GOOGLE_CREDENTIALS_FILE (-credentials): default credentials.json
  - WORKBOOK_PATH (-workbook): default potluck.xlsx
  - DATABASE_URL (-d): Enables the submission journal
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

  - handlers: HTTP request handlers (API and page)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, error status mapping
  - entries: Roster and sign-up rules over a worksheet
  - sheet: Google Sheets and excelize worksheet backends, shared client
  - auth: Service account credential loading
  - apperror: Error kinds
  - db: Optional submission journal
  - models: Request/response types
  - cliparse: Configuration parsing
  - web: Embedded page and assets

See package documentation for each component.
*/
package main
