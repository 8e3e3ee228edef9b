package mirror

import (
	"context"
	"fmt"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsConfig holds Google Sheets mirror configuration.
type SheetsConfig struct {
	Enabled         bool   `yaml:"enabled"`
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	Worksheet       string `yaml:"worksheet"`
	CredentialsFile string `yaml:"credentials_file"`
}

// SheetsMirror replicates cap records into one worksheet of a Google
// Sheets spreadsheet.
type SheetsMirror struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
	log           zerolog.Logger
}

// NewSheetsMirror authorizes against the Sheets API with a service-account
// credentials file.
func NewSheetsMirror(ctx context.Context, cfg SheetsConfig, log zerolog.Logger) (*SheetsMirror, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}
	if cfg.Worksheet == "" {
		return nil, fmt.Errorf("worksheet name is required")
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &SheetsMirror{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
		log:           log,
	}, nil
}

// Replace clears every data row below the header and writes the records.
func (m *SheetsMirror) Replace(ctx context.Context, records []capdata.PlayerCapRecord) error {
	clearRange := fmt.Sprintf("%s!A2:Z", m.worksheet)
	_, err := m.svc.Spreadsheets.Values.
		Clear(m.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clearing worksheet %s: %w", m.worksheet, err)
	}

	if len(records) == 0 {
		m.log.Warn().Str("worksheet", m.worksheet).Msg("no records to mirror")
		return nil
	}

	values := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		values = append(values, rowValues(rec))
	}

	_, err = m.svc.Spreadsheets.Values.
		Update(m.spreadsheetID, fmt.Sprintf("%s!A2", m.worksheet), &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("writing worksheet %s: %w", m.worksheet, err)
	}

	m.log.Info().
		Str("worksheet", m.worksheet).
		Int("rows", len(records)).
		Msg("mirror updated")
	return nil
}
