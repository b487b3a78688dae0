// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitEntryRequest: student, category, food_name

# Response Types

Types for JSON responses:

  - StudentsResponse: students
  - EntriesResponse: entries
  - SubmitEntryResponse: success, message, entry
  - SubmissionsResponse: submissions (journal)
  - ErrorResponse: error

# Domain Types

  - Entry: a completed sign-up row with its 1-based row_index
  - SubmittedEntry: the normalised record echoed after a submit
  - Submission: one journaled submit

# Sheet Layout

Column A holds the student name, B the category, C the food name.
Row 1 is a header:

	ColumnStudent  = 1
	ColumnCategory = 2
	ColumnFoodName = 3
	HeaderRows     = 1
*/
package models
