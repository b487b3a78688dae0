// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/apperror"
)

// WorkbookBackend serves a tab of an .xlsx workbook.
// With a Path the file is re-opened for every read and write and saved after
// each write, so edits made outside the server are always seen. An in-memory
// workbook (see NewMemoryWorkbook) is shared and never saved.
type WorkbookBackend struct {
	Path        string
	WorksheetID int

	// mu serializes file access across every handle of this backend
	mu   sync.Mutex
	file *excelize.File
}

// NewWorkbookBackend serves the workbook at path
func NewWorkbookBackend(path string, worksheetID int) *WorkbookBackend {
	return &WorkbookBackend{Path: path, WorksheetID: worksheetID}
}

// NewMemoryWorkbook builds a single-tab workbook holding rows
func NewMemoryWorkbook(rows [][]string) (*WorkbookBackend, error) {
	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)

	for i, row := range rows {
		cell, err := cellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		values := row
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to seed row %d: %w", i+1, err)
		}
	}

	return &WorkbookBackend{file: f}, nil
}

// Open resolves the tab. The handle keeps only the tab name; no rows are held.
func (b *WorkbookBackend) Open(ctx context.Context) (Worksheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.Wrap(apperror.KindBackend, "open cancelled", err)
	}

	var name string
	err := b.withFile(false, func(f *excelize.File) error {
		var err error
		name, err = resolveTab(f, b.WorksheetID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &workbookWorksheet{backend: b, name: name}, nil
}

// withFile runs fn against the workbook under the backend lock.
// In path mode the file is opened for this call only, saved if save is set,
// then closed.
func (b *WorkbookBackend) withFile(save bool, fn func(f *excelize.File) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.file != nil {
		return fn(b.file)
	}

	f, err := excelize.OpenFile(b.Path)
	if errors.Is(err, os.ErrNotExist) {
		return apperror.Wrap(apperror.KindNotFound, "workbook not found", err)
	}
	if err != nil {
		return apperror.Wrap(apperror.KindBackend, "failed to open workbook", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "path", b.Path, "error", err)
		}
	}()

	if err := fn(f); err != nil {
		return err
	}
	if save {
		if err := f.Save(); err != nil {
			return apperror.Wrap(apperror.KindBackend, "failed to save workbook", err)
		}
	}
	return nil
}

// resolveTab finds the tab by its internal sheetId, falling back to the first tab
func resolveTab(f *excelize.File, worksheetID int) (string, error) {
	if name, ok := f.GetSheetMap()[worksheetID]; ok {
		return name, nil
	}

	list := f.GetSheetList()
	if len(list) == 0 {
		return "", apperror.New(apperror.KindNotFound, "workbook has no worksheets")
	}
	slog.Warn("worksheet id not found, using first tab", "worksheet_id", worksheetID, "title", list[0])
	return list[0], nil
}

type workbookWorksheet struct {
	backend *WorkbookBackend
	name    string
}

func (w *workbookWorksheet) Title() string {
	return w.name
}

func (w *workbookWorksheet) ReadAllRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.Wrap(apperror.KindBackend, "read cancelled", err)
	}

	var rows [][]string
	err := w.backend.withFile(false, func(f *excelize.File) error {
		var err error
		rows, err = f.GetRows(w.name)
		if err != nil {
			return apperror.Wrap(apperror.KindBackend, "failed to read worksheet", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (w *workbookWorksheet) WriteCell(ctx context.Context, row, col int, value string) error {
	if err := ctx.Err(); err != nil {
		return apperror.Wrap(apperror.KindBackend, "write cancelled", err)
	}

	cell, err := cellName(row, col)
	if err != nil {
		return apperror.Wrap(apperror.KindValidation, "invalid cell", err)
	}

	return w.backend.withFile(true, func(f *excelize.File) error {
		if err := f.SetCellStr(w.name, cell, value); err != nil {
			return apperror.Wrap(apperror.KindBackend, "failed to write cell "+cell, err)
		}
		return nil
	})
}

// Close is a no-op; files are closed after every operation
func (w *workbookWorksheet) Close() error {
	return nil
}
