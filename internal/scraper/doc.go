// Package scraper provides HTTP fetching and HTML parsing for NFL team
// salary-cap pages.
//
// The scraper fetches a team's cap page, extracts per-player records from
// each roster category table, and cross-checks the extracted sums against
// the subtotals and the grand total the publisher prints on the same page.
// A mismatch is a hard verification failure for that team. It also
// discovers the full set of team identifiers from the site's NFL
// navigation page, treating any count other than 32 as a structural
// change in the upstream site.
package scraper
