package mirror

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
)

// DryRunMirror prints the rows that would be written without touching any
// spreadsheet.
type DryRunMirror struct {
	out io.Writer
}

// NewDryRunMirror creates a dry-run mirror writing to out.
func NewDryRunMirror(out io.Writer) *DryRunMirror {
	return &DryRunMirror{out: out}
}

// Replace prints the header and every row, tab separated.
func (m *DryRunMirror) Replace(_ context.Context, records []capdata.PlayerCapRecord) error {
	fmt.Fprintf(m.out, "--- mirror dry run: %d rows ---\n", len(records))
	fmt.Fprintln(m.out, strings.Join(Header, "\t"))
	for _, rec := range records {
		cells := make([]string, 0, len(Header))
		for _, v := range rowValues(rec) {
			cells = append(cells, fmt.Sprint(v))
		}
		fmt.Fprintln(m.out, strings.Join(cells, "\t"))
	}
	return nil
}
