// Package capdata defines the domain types for NFL salary-cap tracking.
//
// The capdata package holds the per-player cap record, the fixed roster
// category table used to locate cap tables on a team page, currency text
// parsing, and the typed errors raised by the scrape-and-verify pipeline.
// Records are constructed once per scrape run and never mutated afterwards.
package capdata
