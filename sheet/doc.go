// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheet reads and writes one spreadsheet tab.

# Backends

	backend := &sheet.GoogleBackend{SpreadsheetID: id, WorksheetID: tab, Credentials: key}
	backend := sheet.NewWorkbookBackend("potluck.xlsx", tab)
	backend, err := sheet.NewMemoryWorkbook(rows) // tests

Both look the tab up by its numeric id and fall back to the first tab.

# Client

Client is the only shared handle. It opens the worksheet on first use and
drops it after an auth or backend failure, so the next call re-opens:

	client := sheet.NewClient(backend)
	defer client.Close()

	rows, err := client.ReadAllRows(ctx)
	err = client.WriteCell(ctx, 2, 3, "Apple Pie")

Rows and columns are 1-based. Nothing is cached between calls.
*/
package sheet
