package scraper

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
)

// FetchTeamCap fetches a team's cap page and returns its fully verified
// dataset. The error is a *capdata.FetchError for transport failures, a
// *capdata.VerificationError when extracted records disagree with a
// published total, or a plain error when an expected page region is
// missing entirely.
func (c *Client) FetchTeamCap(ctx context.Context, team string) (*capdata.TeamCapDataset, error) {
	doc, err := c.fetchDocument(ctx, c.teamURL(team))
	if err != nil {
		return nil, err
	}
	return c.aggregateTeamCap(doc, team)
}

// aggregateTeamCap runs table extraction over every roster category in
// order, concatenates the non-empty batches, and verifies the result
// against the page-level grand total. Re-running it on the same document
// yields an identical record sequence.
func (c *Client) aggregateTeamCap(doc *goquery.Document, team string) (*capdata.TeamCapDataset, error) {
	var records []capdata.PlayerCapRecord
	for _, cat := range capdata.Categories(c.season) {
		batch, err := c.extractTable(doc, cat, team)
		if err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}

	published, err := c.pageTotal(doc)
	if err != nil {
		return nil, fmt.Errorf("extracting grand total for %s: %w", team, err)
	}
	if err := verifyTotal(records, published, fmt.Sprintf("grand total for %s", team)); err != nil {
		return nil, err
	}

	c.log.Info().
		Str("team", team).
		Int("records", len(records)).
		Int64("cap_total", published).
		Msg("total cap checks out")

	return &capdata.TeamCapDataset{Team: team, Records: records}, nil
}

func (c *Client) teamURL(team string) string {
	return fmt.Sprintf("%s%s/cap/", c.baseURL, team)
}
