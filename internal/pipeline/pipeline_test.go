package pipeline

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Aditi1968/postpartum-health-analytics/internal/config"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Env:            "development",
		UserCount:      25,
		CaregiverCount: 3,
		MaxJournals:    10,
		PHQWeeks:       4,
		Seed:           42,
		OutputDir:      dir,
	}
}

func readTable(t *testing.T, dir, name string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, name+".csv"))
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return records
}

func TestRun_WritesAllTables(t *testing.T) {
	dir := t.TempDir()
	summary, err := Run(context.Background(), testConfig(dir), zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	names := []string{
		"users", "caregivers", "user_caregiver_map", "family_members",
		"user_family_access", "journals", "phq_scores", "alerts",
		"dim_date", "visits",
	}
	if len(summary.Tables) != len(names) {
		t.Fatalf("expected %d tables in summary, got %d", len(names), len(summary.Tables))
	}
	for _, name := range names {
		records := readTable(t, dir, name)
		if got := len(records) - 1; got != summary.Tables[name] {
			t.Fatalf("%s: file has %d rows, summary says %d", name, got, summary.Tables[name])
		}
	}

	if n := summary.Tables["users"]; n != 25 {
		t.Fatalf("expected 25 users, got %d", n)
	}
	if n := summary.Tables["user_caregiver_map"]; n != 25 {
		t.Fatalf("expected one assignment per user, got %d", n)
	}
	if n := summary.Tables["phq_scores"]; n != 25*4 {
		t.Fatalf("expected 100 PHQ scores, got %d", n)
	}
	if n := summary.Tables["dim_date"]; n != 365 {
		t.Fatalf("expected 365 dimension rows, got %d", n)
	}
	if n := summary.Tables["family_members"]; n != summary.Tables["user_family_access"] {
		t.Fatalf("family members (%d) and access grants (%d) must match", n, summary.Tables["user_family_access"])
	}
}

func TestRun_ReferentialIntegrity(t *testing.T) {
	dir := t.TempDir()
	if _, err := Run(context.Background(), testConfig(dir), zerolog.Nop()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	users := readTable(t, dir, "users")
	userIDs := make(map[string]bool)
	for _, row := range users[1:] {
		userIDs[row[0]] = true
	}

	caregivers := readTable(t, dir, "caregivers")
	caregiverIDs := make(map[string]bool)
	for _, row := range caregivers[1:] {
		caregiverIDs[row[0]] = true
	}

	for _, row := range readTable(t, dir, "user_caregiver_map")[1:] {
		if !userIDs[row[0]] || !caregiverIDs[row[1]] {
			t.Fatalf("dangling assignment row: %v", row)
		}
	}

	for _, row := range readTable(t, dir, "journals")[1:] {
		if !userIDs[row[1]] {
			t.Fatalf("journal for unknown user: %v", row)
		}
	}

	for _, row := range readTable(t, dir, "alerts")[1:] {
		if !userIDs[row[1]] {
			t.Fatalf("alert for unknown user: %v", row)
		}
		if typ := row[2]; typ != "Mood" && typ != "PHQ" {
			t.Fatalf("unexpected alert type: %v", row)
		}
	}
}

func TestRun_AlertsHaveNoDuplicateRows(t *testing.T) {
	dir := t.TempDir()
	if _, err := Run(context.Background(), testConfig(dir), zerolog.Nop()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	seen := make(map[string]bool)
	for _, row := range readTable(t, dir, "alerts")[1:] {
		key := row[0] + "|" + row[1] + "|" + row[2] + "|" + row[3] + "|" + row[4] + "|" + row[5]
		if seen[key] {
			t.Fatalf("duplicate alert row: %v", row)
		}
		seen[key] = true
	}
}

func TestRun_DeterministicUnderSeed(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	if _, err := Run(context.Background(), testConfig(dirA), zerolog.Nop()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := Run(context.Background(), testConfig(dirB), zerolog.Nop()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	for _, name := range []string{"users", "caregivers", "journals", "phq_scores", "alerts", "visits"} {
		a, err := os.ReadFile(filepath.Join(dirA, name+".csv"))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name+".csv"))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(a) != string(b) {
			t.Fatalf("%s.csv differs between equally seeded runs", name)
		}
	}
}

func TestRun_WritesManifest(t *testing.T) {
	dir := t.TempDir()
	summary, err := Run(context.Background(), testConfig(dir), zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var m Summary
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if m.RunID == "" || m.RunID != summary.RunID {
		t.Fatalf("manifest run id mismatch: %q vs %q", m.RunID, summary.RunID)
	}
	if m.Seed != 42 {
		t.Fatalf("manifest seed %d, want 42", m.Seed)
	}
	if m.Tables["users"] != 25 {
		t.Fatalf("manifest users count %d, want 25", m.Tables["users"])
	}
}
