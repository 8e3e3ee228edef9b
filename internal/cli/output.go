package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/syncer"
)

// OutputFormat specifies the report output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteReport writes the run report in the specified format.
func WriteReport(w io.Writer, report *syncer.Report, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case FormatText:
		return writeText(w, report)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText outputs the report as human-readable text.
func writeText(w io.Writer, report *syncer.Report) error {
	var total int
	for _, res := range report.Synced {
		total += res.Records
	}
	fmt.Fprintf(w, "Synced %d teams (%d records).\n", len(report.Synced), total)

	if len(report.Skipped) > 0 {
		fmt.Fprintf(w, "\nSkipped %d teams:\n", len(report.Skipped))
		for _, res := range report.Skipped {
			fmt.Fprintf(w, "  %s: %s\n", res.Team, res.Reason)
		}
	}

	if report.MirrorErr != "" {
		fmt.Fprintf(w, "\nMirror failed: %s\n", report.MirrorErr)
	} else {
		fmt.Fprintf(w, "Mirrored %d rows.\n", report.Mirrored)
	}
	return nil
}
