package alert

import (
	"testing"
	"time"
)

func TestMerge_DedupesExactRows(t *testing.T) {
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	a := Alert{ID: "A1", UserID: "U00001", Type: TypeMood, Reason: "3 negative journal entries", Severity: SeverityMedium, Date: date}
	b := Alert{ID: "A2", UserID: "U00002", Type: TypePHQ, Reason: "High PHQ Score: 21", Severity: SeverityHigh, Date: date}

	merged := Merge([]Alert{a, b}, []Alert{a})
	if len(merged) != 2 {
		t.Fatalf("expected duplicate dropped, got %d alerts", len(merged))
	}
	if merged[0] != a || merged[1] != b {
		t.Fatalf("merge must preserve first-seen order: %+v", merged)
	}
}

func TestMerge_KeepsNearDuplicates(t *testing.T) {
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	a := Alert{ID: "A1", UserID: "U00001", Type: TypeMood, Reason: "3 negative journal entries", Severity: SeverityMedium, Date: date}
	b := a
	b.ID = "A9" // differs in one field only

	merged := Merge([]Alert{a}, []Alert{b})
	if len(merged) != 2 {
		t.Fatalf("rows differing in any field must both survive, got %d", len(merged))
	}
}

func TestMerge_Empty(t *testing.T) {
	if got := Merge(nil, []Alert{}); len(got) != 0 {
		t.Fatalf("expected empty merge, got %d", len(got))
	}
}
