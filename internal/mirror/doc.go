// Package mirror replicates stored cap records into a spreadsheet.
//
// The Google Sheets mirror rewrites everything below the header row of a
// fixed worksheet on each run. A dry-run mirror prints what would be
// written instead of touching any external service.
package mirror
