// Package cli implements the command-line interface for cap-tracker.
//
// The cli package provides the Cobra-based CLI with a sync command that
// runs the full scrape → store → mirror pipeline and a teams command that
// prints the discovered team directory. It wires the scraper, store,
// mirror, and syncer packages together from the loaded configuration.
package cli
