package capdata

import "testing"

func TestCategories(t *testing.T) {
	cats := Categories(2023)

	if len(cats) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(cats))
	}

	if !cats[0].IsActive() {
		t.Error("first category should be the active table")
	}
	for i, cat := range cats[1:] {
		if cat.IsActive() {
			t.Errorf("category %d should not be active", i+1)
		}
	}

	expectedLabels := []string{
		"active",
		"2023 Reserve/Suspended Cap",
		"2023 Exempt/Commissioner’s Permission List",
		"2023 Injured Reserve Cap",
		"2023 Reserve/PUP",
		"2023 Non-Football Injury Cap",
		"2023 Practice Squad",
		"2023 Dead Cap",
	}
	for i, want := range expectedLabels {
		if cats[i].Label != want {
			t.Errorf("category %d label = %q, expected %q", i, cats[i].Label, want)
		}
	}
}

func TestCategoriesSeasonIsDataEdit(t *testing.T) {
	cats := Categories(2024)
	if cats[7].Label != "2024 Dead Cap" {
		t.Errorf("expected season to flow into labels, got %q", cats[7].Label)
	}
	if cats[0].Label != "active" {
		t.Errorf("active label should not carry the season, got %q", cats[0].Label)
	}
}
