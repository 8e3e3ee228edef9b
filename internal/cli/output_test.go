package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/syncer"
)

func sampleReport() *syncer.Report {
	return &syncer.Report{
		Synced: []syncer.TeamResult{
			{Team: "buffalo-bills", Records: 70},
			{Team: "miami-dolphins", Records: 65},
		},
		Skipped: []syncer.TeamResult{
			{Team: "new-york-jets", Reason: "grand total for new-york-jets: expected cap_hit sum 10, got 9"},
		},
		Mirrored: 135,
	}
}

func TestWriteReportText(t *testing.T) {
	var out bytes.Buffer
	if err := WriteReport(&out, sampleReport(), FormatText); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Synced 2 teams (135 records).") {
		t.Errorf("missing sync summary in:\n%s", got)
	}
	if !strings.Contains(got, "new-york-jets: grand total") {
		t.Errorf("missing skip reason in:\n%s", got)
	}
	if !strings.Contains(got, "Mirrored 135 rows.") {
		t.Errorf("missing mirror summary in:\n%s", got)
	}
}

func TestWriteReportJSON(t *testing.T) {
	var out bytes.Buffer
	if err := WriteReport(&out, sampleReport(), FormatJSON); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	var decoded syncer.Report
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Synced) != 2 || decoded.Mirrored != 135 {
		t.Errorf("round-tripped report does not match: %+v", decoded)
	}
}

func TestWriteReportUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	if err := WriteReport(&out, sampleReport(), OutputFormat("xml")); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
