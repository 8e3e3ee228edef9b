package capdata

import "fmt"

// TeamCount is the number of NFL teams the directory page must yield.
// Any other count means the site structure changed underneath us.
const TeamCount = 32

// VerificationError reports a mismatch between the summed cap hits of an
// extracted batch and the total published alongside it. It is fatal for
// the team being processed but not for the run.
type VerificationError struct {
	Context  string
	Expected int64
	Actual   int64
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s: expected cap_hit sum %d, got %d", e.Context, e.Expected, e.Actual)
}

// DirectoryError reports a team directory that did not yield exactly
// TeamCount teams. It aborts the whole run before any team is processed.
type DirectoryError struct {
	Count int
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("extracted %d instead of %d NFL teams", e.Count, TeamCount)
}

// FetchError wraps a transport-level failure retrieving a page.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
