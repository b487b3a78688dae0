// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SHEET_BACKEND", "SPREADSHEET_ID", "WORKSHEET_ID",
		"GOOGLE_CREDENTIALS", "GOOGLE_CREDENTIALS_FILE", "WORKBOOK_PATH", "DATABASE_URL", "DATABASE_TYPE"} {
		t.Setenv(key, "")
	}

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Backend != BackendGoogle {
		t.Errorf("expected backend %q, got %q", BackendGoogle, cfg.Backend)
	}
	if cfg.SpreadsheetID != DefaultSpreadsheetID {
		t.Errorf("expected default spreadsheet id, got %q", cfg.SpreadsheetID)
	}
	if cfg.WorksheetID != DefaultWorksheetID {
		t.Errorf("expected worksheet id %d, got %d", DefaultWorksheetID, cfg.WorksheetID)
	}
	if cfg.CredentialsFile != DefaultCredentialsFile {
		t.Errorf("expected credentials file %q, got %q", DefaultCredentialsFile, cfg.CredentialsFile)
	}
	if cfg.JournalEnabled() {
		t.Error("journal should be disabled without DATABASE_URL")
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected database type %q, got %q", DatabaseSQLite, cfg.DatabaseType)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SHEET_BACKEND", "xlsx")
	t.Setenv("WORKSHEET_ID", "42")
	t.Setenv("GOOGLE_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("WORKBOOK_PATH", "/tmp/class.xlsx")
	t.Setenv("DATABASE_URL", "file:journal.db")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Backend != BackendXLSX {
		t.Errorf("expected backend xlsx, got %q", cfg.Backend)
	}
	if cfg.WorksheetID != 42 {
		t.Errorf("expected worksheet id 42, got %d", cfg.WorksheetID)
	}
	if cfg.CredentialsJSON == "" {
		t.Error("expected inline credentials from env")
	}
	if cfg.WorkbookPath != "/tmp/class.xlsx" {
		t.Errorf("expected workbook path from env, got %q", cfg.WorkbookPath)
	}
	if !cfg.JournalEnabled() {
		t.Error("journal should be enabled with DATABASE_URL")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SPREADSHEET_ID", "from-env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-sheet", "from-flag", "-tab", "7", "-d", "postgres://x", "-t", "postgres"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.SpreadsheetID != "from-flag" {
		t.Errorf("CLI should override env: expected from-flag, got %q", cfg.SpreadsheetID)
	}
	if cfg.WorksheetID != 7 {
		t.Errorf("expected worksheet id 7, got %d", cfg.WorksheetID)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_TabZero(t *testing.T) {
	t.Setenv("WORKSHEET_ID", "42")

	// The first Google tab usually has id 0; an explicit -tab 0 must not fall back
	cfg, err := ParseFlags([]string{"-tab", "0"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorksheetID != 0 {
		t.Errorf("expected worksheet id 0 from flag, got %d", cfg.WorksheetID)
	}

	t.Setenv("WORKSHEET_ID", "0")
	cfg, err = ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorksheetID != 0 {
		t.Errorf("expected worksheet id 0 from env, got %d", cfg.WorksheetID)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port", map[string]string{"PORT": "abc"}, nil},
		{"bad worksheet id", map[string]string{"WORKSHEET_ID": "gid"}, nil},
		{"unknown backend", nil, []string{"-backend", "csv"}},
		{"unknown database", nil, []string{"-t", "mysql"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("WORKSHEET_ID", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
