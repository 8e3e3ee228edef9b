package capdata

import "fmt"

// ActiveLabel marks the roster category whose table carries no heading and
// is located by its CSS class instead.
const ActiveLabel = "active"

// RosterCategory pairs the heading text that locates a cap table on a team
// page with the roster_status tag stamped onto its records.
type RosterCategory struct {
	Label  string
	Status string
}

// IsActive reports whether the category is the class-located active table.
func (c RosterCategory) IsActive() bool {
	return c.Label == ActiveLabel
}

// Categories returns the ordered roster category table for a season. The
// heading labels embed the season year, so a new season is a data edit
// here rather than a code change. The exempt label carries the site's
// typographic apostrophe and must stay an exact match.
func Categories(season int) []RosterCategory {
	return []RosterCategory{
		{Label: ActiveLabel, Status: "active"},
		{Label: fmt.Sprintf("%d Reserve/Suspended Cap", season), Status: "reserve/suspended"},
		{Label: fmt.Sprintf("%d Exempt/Commissioner’s Permission List", season), Status: "exempt"},
		{Label: fmt.Sprintf("%d Injured Reserve Cap", season), Status: "ir"},
		{Label: fmt.Sprintf("%d Reserve/PUP", season), Status: "pup"},
		{Label: fmt.Sprintf("%d Non-Football Injury Cap", season), Status: "non-football injury"},
		{Label: fmt.Sprintf("%d Practice Squad", season), Status: "practice squad"},
		{Label: fmt.Sprintf("%d Dead Cap", season), Status: "dead cap"},
	}
}
