// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Gateway is the row-level view of one worksheet
type Gateway interface {
	// ReadAllRows returns every row in sheet order. Rows may be ragged.
	ReadAllRows(ctx context.Context) ([][]string, error)
	// WriteCell overwrites one cell. row and col are 1-based.
	WriteCell(ctx context.Context, row, col int, value string) error
}

// Worksheet is an open handle to one tab
type Worksheet interface {
	Gateway
	io.Closer
	Title() string
}

// Backend opens the configured worksheet
type Backend interface {
	Open(ctx context.Context) (Worksheet, error)
}

// cellName converts 1-based coordinates to A1 notation ("C2")
func cellName(row, col int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", fmt.Errorf("invalid cell (%d, %d): %w", row, col, err)
	}
	return name, nil
}

// qualifiedRange prefixes a range with a quoted sheet title ('Class List'!C2)
func qualifiedRange(title, cell string) string {
	quoted := "'" + strings.ReplaceAll(title, "'", "''") + "'"
	if cell == "" {
		return quoted
	}
	return quoted + "!" + cell
}
