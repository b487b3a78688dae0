// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5001)
  - Backend: google (Sheets API) or xlsx (local workbook)
  - SpreadsheetID: Google spreadsheet key
  - WorksheetID: numeric tab id (the gid in the sheet URL)
  - CredentialsJSON: inline service account key (env only)
  - CredentialsFile: service account key file (default: credentials.json)
  - WorkbookPath: workbook used by the xlsx backend
  - DatabaseURL: journal database; empty disables the journal
  - DatabaseType: sqlite (default) or postgres

# CLI Flags

	-p            Server port
	-backend      Sheet backend
	-sheet        Spreadsheet ID
	-tab          Worksheet ID
	-credentials  Service account key file
	-workbook     Workbook path
	-d            Journal database URL
	-t            Journal database type

# Environment Variables

Flags fall back to environment variables:

	PORT                    → -p
	SHEET_BACKEND           → -backend
	SPREADSHEET_ID          → -sheet
	WORKSHEET_ID            → -tab
	GOOGLE_CREDENTIALS_FILE → -credentials
	WORKBOOK_PATH           → -workbook
	DATABASE_URL            → -d
	DATABASE_TYPE           → -t

GOOGLE_CREDENTIALS has no flag. CLI flags take precedence over environment
variables. main loads a .env file before parsing.
*/
package cliparse
