package capdata

import (
	"errors"
	"testing"
)

func int64Ptr(v int64) *int64 { return &v }

func TestSumCapHitsSkipsNil(t *testing.T) {
	records := []PlayerCapRecord{
		{CapHit: int64Ptr(100), RosterStatus: "active", Team: "buffalo-bills"},
		{CapHit: nil, RosterStatus: "active", Team: "buffalo-bills"},
		{CapHit: int64Ptr(250), RosterStatus: "dead cap", Team: "buffalo-bills"},
	}

	if got := SumCapHits(records); got != 350 {
		t.Errorf("SumCapHits = %d, expected 350", got)
	}
}

func TestSumCapHitsEmpty(t *testing.T) {
	if got := SumCapHits(nil); got != 0 {
		t.Errorf("SumCapHits(nil) = %d, expected 0", got)
	}
}

func TestTeamCapDatasetTotal(t *testing.T) {
	ds := &TeamCapDataset{
		Team: "buffalo-bills",
		Records: []PlayerCapRecord{
			{CapHit: int64Ptr(5000000)},
			{CapHit: int64Ptr(1000000)},
		},
	}
	if got := ds.TotalCapHit(); got != 6000000 {
		t.Errorf("TotalCapHit = %d, expected 6000000", got)
	}
}

func TestVerificationErrorMessage(t *testing.T) {
	err := &VerificationError{Context: "active table for buffalo-bills", Expected: 100, Actual: 90}
	want := "active table for buffalo-bills: expected cap_hit sum 100, got 90"
	if err.Error() != want {
		t.Errorf("Error() = %q, expected %q", err.Error(), want)
	}
}

func TestDirectoryErrorMessage(t *testing.T) {
	err := &DirectoryError{Count: 31}
	want := "extracted 31 instead of 32 NFL teams"
	if err.Error() != want {
		t.Errorf("Error() = %q, expected %q", err.Error(), want)
	}
}

func TestFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &FetchError{URL: "https://example.com/nfl/", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("FetchError should unwrap to its cause")
	}
}
