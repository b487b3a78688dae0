package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Sheet backends
const (
	BackendGoogle = "google"
	BackendXLSX   = "xlsx"
)

// Journal database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Defaults for the class sign-up sheet
const (
	DefaultPort            = 5001
	DefaultSpreadsheetID   = "1nqJ3dcg5H1-dp6ZmA6RLU_yVID0E920ZhCRRBgqMWIE"
	DefaultWorksheetID     = 1047227859
	DefaultCredentialsFile = "credentials.json"
	DefaultWorkbookPath    = "potluck.xlsx"
)

type Config struct {
	Port            int
	Backend         string
	SpreadsheetID   string
	WorksheetID     int64
	CredentialsJSON string
	CredentialsFile string
	WorkbookPath    string
	DatabaseURL     string
	DatabaseType    string
}

// JournalEnabled reports whether submissions should be recorded in a database
func (c Config) JournalEnabled() bool {
	return c.DatabaseURL != ""
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("potluck", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Backend, "backend", "", "Sheet backend (google or xlsx)")
	fs.StringVar(&cfg.SpreadsheetID, "sheet", "", "Spreadsheet ID")
	fs.Int64Var(&cfg.WorksheetID, "tab", 0, "Worksheet (tab) ID")
	fs.StringVar(&cfg.CredentialsFile, "credentials", "", "Service account key file")
	fs.StringVar(&cfg.WorkbookPath, "workbook", "", "Workbook path for the xlsx backend")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Journal database URL (optional)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Journal database type (sqlite or postgres)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.Backend == "" {
		cfg.Backend = envOr("SHEET_BACKEND", BackendGoogle)
	}
	if cfg.Backend != BackendGoogle && cfg.Backend != BackendXLSX {
		return Config{}, fmt.Errorf("unknown sheet backend %q (use google or xlsx)", cfg.Backend)
	}

	if cfg.SpreadsheetID == "" {
		cfg.SpreadsheetID = envOr("SPREADSHEET_ID", DefaultSpreadsheetID)
	}

	// 0 is a real tab id (usually the first tab), so only an unset flag falls back
	if !set["tab"] {
		if idStr := os.Getenv("WORKSHEET_ID"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid WORKSHEET_ID env variable")
			}
			cfg.WorksheetID = id
		} else {
			cfg.WorksheetID = DefaultWorksheetID
		}
	}

	// Inline key is env-only; it should never show up in a process listing
	cfg.CredentialsJSON = os.Getenv("GOOGLE_CREDENTIALS")
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = envOr("GOOGLE_CREDENTIALS_FILE", DefaultCredentialsFile)
	}

	if cfg.WorkbookPath == "" {
		cfg.WorkbookPath = envOr("WORKBOOK_PATH", DefaultWorkbookPath)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", DatabaseSQLite)
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unknown database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
