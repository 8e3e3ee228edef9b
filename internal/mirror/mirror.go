package mirror

import (
	"context"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
)

// Header is the fixed first row of the mirrored sheet. Data rows are
// written below it in store order.
var Header = []string{"player_name", "position", "cap_hit", "roster_status", "team"}

// Mirror defines the interface for replicating cap records to a
// spreadsheet-shaped destination.
type Mirror interface {
	// Replace rewrites the full set of data rows from the given records.
	Replace(ctx context.Context, records []capdata.PlayerCapRecord) error
}

// rowValues renders one record as a sheet row. Nil fields become empty
// cells.
func rowValues(rec capdata.PlayerCapRecord) []interface{} {
	row := make([]interface{}, 0, len(Header))
	if rec.Name != nil {
		row = append(row, *rec.Name)
	} else {
		row = append(row, "")
	}
	if rec.Position != nil {
		row = append(row, *rec.Position)
	} else {
		row = append(row, "")
	}
	if rec.CapHit != nil {
		row = append(row, *rec.CapHit)
	} else {
		row = append(row, "")
	}
	row = append(row, rec.RosterStatus, rec.Team)
	return row
}

// disabled is a no-op mirror for configurations without a spreadsheet.
type disabled struct{}

// Disabled returns a mirror that ignores every replace.
func Disabled() Mirror {
	return disabled{}
}

func (disabled) Replace(context.Context, []capdata.PlayerCapRecord) error {
	return nil
}
