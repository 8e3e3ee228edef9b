package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
)

// verifyTotal asserts that the summed cap hits of a batch equal a published
// total. Records with no cap hit are excluded from the sum, so a malformed
// row surfaces here as a shortfall. This is a correctness gate: callers
// treat a mismatch as fatal for the team being processed.
func verifyTotal(records []capdata.PlayerCapRecord, published int64, context string) error {
	actual := capdata.SumCapHits(records)
	if actual != published {
		return &capdata.VerificationError{
			Context:  context,
			Expected: published,
			Actual:   actual,
		}
	}
	return nil
}

// tableSubtotal reads the cap-hit subtotal a category table publishes in
// its footer. Unparseable footer text degrades to 0, matching how the
// verification then flags the table rather than crashing the parse.
func tableSubtotal(table *goquery.Selection) (int64, error) {
	span := table.Find(`tfoot td.right.result.xs-visible span[title="Cap Hit"]`).First()
	if span.Length() == 0 {
		return 0, errors.New("footer cap total cell not found")
	}
	v, err := capdata.ParseDollars(span.Text())
	if err != nil {
		return 0, nil
	}
	return v, nil
}

// pageTotal reads the team-level grand total from the "<season> Cap Totals"
// block at the bottom of a team page.
func (c *Client) pageTotal(doc *goquery.Document) (int64, error) {
	label := fmt.Sprintf("%d Cap Totals", c.season)
	heading := findHeading(doc, label)
	if heading == nil {
		return 0, fmt.Errorf("heading %q not found", label)
	}

	table := nextMatching(heading, "table.datatable.rtable.captotal")
	if table == nil {
		return 0, fmt.Errorf("cap totals table not found after %q", label)
	}

	var totalRow *goquery.Selection
	table.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		if strings.TrimSpace(td.Text()) == "Total" {
			totalRow = td.Closest("tr")
			return false
		}
		return true
	})
	if totalRow == nil {
		return 0, errors.New("total row not found in cap totals table")
	}

	cell := totalRow.Find("td").Last()
	v, err := capdata.ParseDollars(cell.Text())
	if err != nil {
		return 0, fmt.Errorf("parsing grand total: %w", err)
	}
	return v, nil
}
