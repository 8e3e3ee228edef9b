package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
)

// extractRow parses a single table row into a PlayerCapRecord. The three
// data fields are extracted independently: a missing or unparseable field
// becomes nil with a diagnostic log, and never aborts the other fields.
func (c *Client) extractRow(row *goquery.Selection, status, team string) capdata.PlayerCapRecord {
	rec := capdata.PlayerCapRecord{
		RosterStatus: status,
		Team:         team,
	}

	if a := row.Find("td.player a").First(); a.Length() > 0 {
		name := strings.TrimSpace(a.Text())
		rec.Name = &name
	} else {
		c.log.Warn().
			Str("team", team).
			Str("roster_status", status).
			Msg("player name missing from row")
	}

	if td := row.Find("td.center").First(); td.Length() > 0 {
		pos := strings.TrimSpace(td.Text())
		rec.Position = &pos
	} else {
		c.log.Warn().
			Str("team", team).
			Str("roster_status", status).
			Str("player", nameOrPlaceholder(rec.Name)).
			Msg("position missing from row")
	}

	span := row.Find(`td[class^="right result"] span[title^="Cap Hit"]`).First()
	if span.Length() == 0 {
		c.log.Warn().
			Str("team", team).
			Str("roster_status", status).
			Str("player", nameOrPlaceholder(rec.Name)).
			Msg("cap hit missing from row")
		return rec
	}

	v, err := capdata.ParseDollars(span.Text())
	if err != nil {
		c.log.Warn().
			Err(err).
			Str("team", team).
			Str("roster_status", status).
			Str("player", nameOrPlaceholder(rec.Name)).
			Msg("cap hit unparseable")
		return rec
	}
	rec.CapHit = &v

	return rec
}

// extractRows parses every body row of a cap table.
func (c *Client) extractRows(table *goquery.Selection, status, team string) []capdata.PlayerCapRecord {
	rows := table.Find("tbody tr")
	records := make([]capdata.PlayerCapRecord, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		records = append(records, c.extractRow(row, status, team))
	})
	return records
}

func nameOrPlaceholder(name *string) string {
	if name == nil {
		return "?"
	}
	return *name
}
