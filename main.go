package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/auth"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/cliparse"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/db"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/entries"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/middleware"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/router"
	"github.com/Daphne-CPAdmin/Grade5PotluckApp/sheet"
)

func main() {
	var err error

	// A missing .env is fine; real environments set variables directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Opened lazily on first request
	client := sheet.NewClient(newBackend(cfg))
	defer client.Close()

	var journal *db.Journal
	if cfg.JournalEnabled() {
		dbConn, err := openJournalDB(cfg)
		if err != nil {
			slog.Error("journal database setup failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()
		journal = db.NewJournal(dbConn)
		slog.Info("Submission journal ready", "type", cfg.DatabaseType)
	}

	// Create router
	mux := router.NewRouter(entries.NewRepository(client), journal)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "backend", cfg.Backend)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func newBackend(cfg cliparse.Config) sheet.Backend {
	switch cfg.Backend {
	case cliparse.BackendXLSX:
		slog.Info("Using local workbook", "path", cfg.WorkbookPath)
		return sheet.NewWorkbookBackend(cfg.WorkbookPath, int(cfg.WorksheetID))
	default:
		// Informational only; every worksheet open re-loads the key
		if creds, err := auth.LoadCredentials(cfg.CredentialsJSON, cfg.CredentialsFile); err != nil {
			slog.Warn("sheets credentials unavailable", "error", err)
		} else {
			slog.Info("Using Google Sheets",
				"spreadsheet", cfg.SpreadsheetID,
				"credentials", string(creds.Source),
				"client_email", creds.ClientEmail,
			)
		}
		return &sheet.GoogleBackend{
			SpreadsheetID: cfg.SpreadsheetID,
			WorksheetID:   cfg.WorksheetID,
			LoadCredentials: func() ([]byte, error) {
				creds, err := auth.LoadCredentials(cfg.CredentialsJSON, cfg.CredentialsFile)
				return creds.JSON, err
			},
		}
	}
}

func openJournalDB(cfg cliparse.Config) (*sql.DB, error) {
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		dbConn.Close()
		return nil, err
	}
	return dbConn, nil
}
