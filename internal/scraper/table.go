package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
)

// capTableSelector matches the publisher's cap tables, including the page
// footer "Cap Totals" table which additionally carries the captotal class.
const capTableSelector = "table.datatable.rtable"

// extractTable locates the table for one roster category and returns its
// records, verified against the table's own footer subtotal. An absent
// heading means the category does not exist for this team and yields an
// empty batch, not an error. A subtotal mismatch is a hard stop.
func (c *Client) extractTable(doc *goquery.Document, cat capdata.RosterCategory, team string) ([]capdata.PlayerCapRecord, error) {
	var table *goquery.Selection

	if cat.IsActive() {
		table = doc.Find(capTableSelector).First()
		if table.Length() == 0 {
			c.log.Warn().Str("team", team).Msg("active cap table not found")
			return nil, nil
		}
	} else {
		heading := findHeading(doc, cat.Label)
		if heading == nil {
			return nil, nil
		}
		table = nextMatching(heading, capTableSelector)
		if table == nil {
			c.log.Warn().
				Str("team", team).
				Str("category", cat.Label).
				Msg("no cap table follows category heading")
			return nil, nil
		}
	}

	records := c.extractRows(table, cat.Status, team)

	published, err := tableSubtotal(table)
	if err != nil {
		return nil, fmt.Errorf("extracting %s subtotal for %s: %w", cat.Status, team, err)
	}
	ctxLabel := fmt.Sprintf("%s table for %s", cat.Status, team)
	if err := verifyTotal(records, published, ctxLabel); err != nil {
		return nil, err
	}

	return records, nil
}

// findHeading returns the first h2 whose text exactly equals label, or nil.
func findHeading(doc *goquery.Document, label string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.TrimSpace(h.Text()) == label {
			found = h
			return false
		}
		return true
	})
	return found
}

// nextMatching walks forward in document order from a node and returns the
// first element matching selector. It checks each following sibling and its
// descendants, then climbs to the parent and repeats, mirroring how the cap
// pages nest a category's table after its heading.
func nextMatching(from *goquery.Selection, selector string) *goquery.Selection {
	for cur := from; cur.Length() > 0; cur = cur.Parent() {
		var found *goquery.Selection
		cur.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			if sib.Is(selector) {
				found = sib
				return false
			}
			if t := sib.Find(selector).First(); t.Length() > 0 {
				found = t
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}
