package models

import "time"

// Worksheet columns (1-based)
const (
	ColumnStudent  = 1
	ColumnCategory = 2
	ColumnFoodName = 3
)

// HeaderRows is the number of leading rows that are never data
const HeaderRows = 1

// Request types

type SubmitEntryRequest struct {
	Student  string `json:"student"`
	Category string `json:"category"`
	FoodName string `json:"food_name"`
}

// Response types

type StudentsResponse struct {
	Students []string `json:"students"`
}

type EntriesResponse struct {
	Entries []Entry `json:"entries"`
}

type SubmitEntryResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Entry   SubmittedEntry `json:"entry"`
}

type SubmissionsResponse struct {
	Submissions []Submission `json:"submissions"`
}

// Domain types

// Entry is a completed sign-up read from the sheet.
// RowIndex is the 1-based sheet row; informational only.
type Entry struct {
	Student  string `json:"student"`
	Category string `json:"category"`
	FoodName string `json:"food_name"`
	RowIndex int    `json:"row_index"`
}

// SubmittedEntry is the record echoed back after a submit
type SubmittedEntry struct {
	Student  string `json:"student"`
	Category string `json:"category"`
	FoodName string `json:"food_name"`
}

// Submission is one journaled submit
type Submission struct {
	ID           string    `json:"id"`
	Student      string    `json:"student"`
	Category     string    `json:"category"`
	FoodName     string    `json:"food_name"`
	RowIndex     int       `json:"row_index"`
	SubmittedAt  time.Time `json:"submitted_at"`
	SubmittedAgo string    `json:"submitted_ago"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
