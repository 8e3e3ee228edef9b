// Package store persists verified team cap datasets.
//
// The Postgres store replaces a team's rows atomically: a failed scrape or
// verification never leaves a team half-written. A memory store backs dry
// runs and tests with the same replace-by-team semantics.
package store
