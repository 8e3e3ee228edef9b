// Package syncer orchestrates a full cap-tracking run.
//
// A run discovers the 32 team identifiers, then processes teams one at a
// time: scrape, verify, replace the team's rows in the store. A team whose
// fetch or verification fails is skipped and reported; a bad directory
// aborts the run before any team is touched. After the loop the whole
// store is mirrored to the spreadsheet.
package syncer
