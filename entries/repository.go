// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package entries applies the sign-up rules to a worksheet.
package entries

import (
	"context"
	"strings"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/apperror"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/models"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/sheet"
)

// Client-facing messages
const (
	MsgFieldsRequired  = "All fields are required"
	MsgStudentNotFound = "Student not found"
)

// Repository reads and writes sign-ups through a sheet gateway.
// Every call re-reads the whole worksheet.
type Repository struct {
	gw sheet.Gateway
}

func NewRepository(gw sheet.Gateway) *Repository {
	return &Repository{gw: gw}
}

// ListStudents returns the trimmed, non-empty column A values in row order
func (r *Repository) ListStudents(ctx context.Context) ([]string, error) {
	rows, err := r.gw.ReadAllRows(ctx)
	if err != nil {
		return nil, err
	}

	students := []string{}
	for _, row := range dataRows(rows) {
		if name := strings.TrimSpace(cell(row, models.ColumnStudent)); name != "" {
			students = append(students, name)
		}
	}
	return students, nil
}

// ListEntries returns every row whose category and food name are both filled in
func (r *Repository) ListEntries(ctx context.Context) ([]models.Entry, error) {
	rows, err := r.gw.ReadAllRows(ctx)
	if err != nil {
		return nil, err
	}

	entries := []models.Entry{}
	for i, row := range dataRows(rows) {
		category := strings.TrimSpace(cell(row, models.ColumnCategory))
		foodName := strings.TrimSpace(cell(row, models.ColumnFoodName))
		if category == "" || foodName == "" {
			continue
		}
		entries = append(entries, models.Entry{
			Student:  strings.TrimSpace(cell(row, models.ColumnStudent)),
			Category: category,
			FoodName: foodName,
			RowIndex: i + models.HeaderRows + 1,
		})
	}
	return entries, nil
}

// SubmitEntry overwrites the category and food name on the student's row.
// The food name is stored in Proper Name format. The two cell writes are not
// atomic: a failure on the second leaves the category updated.
func (r *Repository) SubmitEntry(ctx context.Context, student, category, foodName string) (models.Entry, error) {
	if student == "" || category == "" || foodName == "" {
		return models.Entry{}, apperror.New(apperror.KindValidation, MsgFieldsRequired)
	}

	foodName = ProperName(foodName)

	rows, err := r.gw.ReadAllRows(ctx)
	if err != nil {
		return models.Entry{}, err
	}

	rowIndex := 0
	for i, row := range dataRows(rows) {
		if strings.TrimSpace(cell(row, models.ColumnStudent)) == student {
			rowIndex = i + models.HeaderRows + 1
			break
		}
	}
	if rowIndex == 0 {
		return models.Entry{}, apperror.New(apperror.KindNotFound, MsgStudentNotFound)
	}

	if err := r.gw.WriteCell(ctx, rowIndex, models.ColumnCategory, category); err != nil {
		return models.Entry{}, err
	}
	if err := r.gw.WriteCell(ctx, rowIndex, models.ColumnFoodName, foodName); err != nil {
		return models.Entry{}, err
	}

	return models.Entry{
		Student:  student,
		Category: category,
		FoodName: foodName,
		RowIndex: rowIndex,
	}, nil
}

func dataRows(rows [][]string) [][]string {
	if len(rows) <= models.HeaderRows {
		return nil
	}
	return rows[models.HeaderRows:]
}

// cell returns the 1-based column of row, or "" past the end
func cell(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return row[col-1]
}
