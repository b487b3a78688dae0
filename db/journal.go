// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/models"
)

// Journal is an append-only log of successful submissions
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db, now: time.Now}
}

// Record appends entry and returns the stored submission
func (j *Journal) Record(entry models.Entry) (models.Submission, error) {
	sub := models.Submission{
		ID:          uuid.NewString(),
		Student:     entry.Student,
		Category:    entry.Category,
		FoodName:    entry.FoodName,
		RowIndex:    entry.RowIndex,
		SubmittedAt: j.now().UTC(),
	}

	_, err := j.db.Exec(`
		INSERT INTO submission (id, student, category, food_name, row_index, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, sub.ID, sub.Student, sub.Category, sub.FoodName, sub.RowIndex, sub.SubmittedAt)
	if err != nil {
		return models.Submission{}, fmt.Errorf("failed to insert submission: %w", err)
	}

	sub.SubmittedAgo = humanize.RelTime(sub.SubmittedAt, j.now(), "ago", "from now")
	return sub, nil
}

// Recent returns up to limit submissions, newest first
func (j *Journal) Recent(limit int) ([]models.Submission, error) {
	rows, err := j.db.Query(`
		SELECT id, student, category, food_name, row_index, submitted_at
		FROM submission
		ORDER BY submitted_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	now := j.now()
	submissions := []models.Submission{}
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(&sub.ID, &sub.Student, &sub.Category, &sub.FoodName, &sub.RowIndex, &sub.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		sub.SubmittedAgo = humanize.RelTime(sub.SubmittedAt, now, "ago", "from now")
		submissions = append(submissions, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}

	return submissions, nil
}
