// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/apperror"
)

// GoogleBackend opens a tab of a hosted Google spreadsheet
type GoogleBackend struct {
	SpreadsheetID string
	WorksheetID   int64
	// Credentials is a service account key; empty means the client options carry auth
	Credentials []byte
	// LoadCredentials, when set, is called on every open and overrides Credentials
	LoadCredentials func() ([]byte, error)
	// ClientOptions are applied after the credentials
	ClientOptions []option.ClientOption
}

func (b *GoogleBackend) Open(ctx context.Context) (Worksheet, error) {
	// The service outlives this request; token refreshes must not see its cancellation
	svcCtx := context.WithoutCancel(ctx)

	key := b.Credentials
	if b.LoadCredentials != nil {
		loaded, err := b.LoadCredentials()
		if err != nil {
			return nil, apperror.Wrap(apperror.KindAuth, "failed to load sheets credentials", err)
		}
		key = loaded
	}

	var opts []option.ClientOption
	if len(key) > 0 {
		creds, err := google.CredentialsFromJSON(svcCtx, key, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, apperror.Wrap(apperror.KindAuth, "invalid sheets credentials", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}
	opts = append(opts, b.ClientOptions...)

	svc, err := sheets.NewService(svcCtx, opts...)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindAuth, "failed to authorize sheets client", err)
	}

	doc, err := svc.Spreadsheets.Get(b.SpreadsheetID).
		Fields(googleapi.Field("sheets.properties(sheetId,title,index)")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyOpen(err)
	}

	var props []*sheets.SheetProperties
	for _, s := range doc.Sheets {
		if s != nil && s.Properties != nil {
			props = append(props, s.Properties)
		}
	}
	if len(props) == 0 {
		return nil, apperror.New(apperror.KindNotFound, "spreadsheet has no worksheets")
	}

	tab := props[0]
	found := false
	for _, p := range props {
		if p.SheetId == b.WorksheetID {
			tab = p
			found = true
			break
		}
	}
	if !found {
		slog.Warn("worksheet id not found, using first tab", "worksheet_id", b.WorksheetID, "title", tab.Title)
	}

	return &googleWorksheet{
		svc:           svc,
		spreadsheetID: b.SpreadsheetID,
		title:         tab.Title,
	}, nil
}

type googleWorksheet struct {
	svc           *sheets.Service
	spreadsheetID string
	title         string
}

func (w *googleWorksheet) Title() string {
	return w.title
}

func (w *googleWorksheet) ReadAllRows(ctx context.Context) ([][]string, error) {
	resp, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, qualifiedRange(w.title, "")).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("failed to read worksheet", err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, v := range raw {
			if v != nil {
				row[j] = fmt.Sprint(v)
			}
		}
		rows[i] = row
	}
	return rows, nil
}

func (w *googleWorksheet) WriteCell(ctx context.Context, row, col int, value string) error {
	cell, err := cellName(row, col)
	if err != nil {
		return apperror.Wrap(apperror.KindValidation, "invalid cell", err)
	}

	_, err = w.svc.Spreadsheets.Values.Update(w.spreadsheetID, qualifiedRange(w.title, cell), &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return classify("failed to write cell "+cell, err)
	}
	return nil
}

// Close is a no-op; the service holds no resources beyond its HTTP client
func (w *googleWorksheet) Close() error {
	return nil
}

// classifyOpen treats an inaccessible spreadsheet as not found
func classifyOpen(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == http.StatusForbidden || gerr.Code == http.StatusNotFound) {
		return apperror.Wrap(apperror.KindNotFound, "spreadsheet not accessible", err)
	}
	return classify("failed to open spreadsheet", err)
}

func classify(message string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusUnauthorized {
		return apperror.Wrap(apperror.KindAuth, message, err)
	}
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		return apperror.Wrap(apperror.KindAuth, message, err)
	}
	return apperror.Wrap(apperror.KindBackend, message, err)
}
