package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
)

// FetchTeams fetches the NFL navigation page and returns the URL-safe
// identifiers of all 32 teams: display names lower-cased with spaces
// replaced by hyphens. Any other count returns a *capdata.DirectoryError,
// which callers treat as fatal for the whole run.
func (c *Client) FetchTeams(ctx context.Context) ([]string, error) {
	doc, err := c.fetchDocument(ctx, c.baseURL)
	if err != nil {
		return nil, err
	}
	return parseTeams(doc)
}

// parseTeams extracts team identifiers from the active NFL category's
// sub-navigation block.
func parseTeams(doc *goquery.Document) ([]string, error) {
	links := doc.Find("li.cat-nfl.active div.subnav-posts a")

	teams := make([]string, 0, links.Length())
	links.Each(func(_ int, a *goquery.Selection) {
		name := strings.ToLower(strings.TrimSpace(a.Text()))
		teams = append(teams, strings.ReplaceAll(name, " ", "-"))
	})

	if len(teams) != capdata.TeamCount {
		return nil, &capdata.DirectoryError{Count: len(teams)}
	}
	return teams, nil
}
