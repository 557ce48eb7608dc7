// Package pipeline runs the generation stages in a fixed order, writes
// the CSV tables plus a run manifest, and optionally mirrors the tables
// into Postgres. Stage order matters: every stage consumes the one shared
// random source, so reordering changes all downstream output.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Aditi1968/postpartum-health-analytics/internal/config"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/alert"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/calendar"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/family"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/journal"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/roster"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/screening"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/visit"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/csvout"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/db"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/synth"
)

// Summary describes one completed generation run; it is also written to
// manifest.json beside the CSV files.
type Summary struct {
	RunID      string         `json:"run_id"`
	Seed       int64          `json:"seed"`
	StartedAt  time.Time      `json:"started_at"`
	DurationMS int64          `json:"duration_ms"`
	OutputDir  string         `json:"output_dir"`
	Tables     map[string]int `json:"tables"`
}

// Run executes the full pipeline. Failures abort immediately; files
// already written stay on disk.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Summary, error) {
	start := time.Now()
	src := synth.New(cfg.Seed)

	rosterGen := roster.NewGenerator(src)
	users := rosterGen.Users(cfg.UserCount)
	logger.Info().Int("count", len(users)).Msg("generated users")

	caregivers := rosterGen.Caregivers(cfg.CaregiverCount)
	logger.Info().Int("count", len(caregivers)).Msg("generated caregivers")

	assignments := rosterGen.Assign(users, caregivers)
	logger.Info().Int("count", len(assignments)).Msg("assigned caregivers")

	members, grants := family.NewGenerator(src).Generate(users)
	logger.Info().Int("members", len(members)).Int("grants", len(grants)).Msg("generated family members")

	entries, moodAlerts := journal.NewGenerator(src, cfg.MaxJournals).Generate(users)
	logger.Info().Int("entries", len(entries)).Int("alerts", len(moodAlerts)).Msg("generated journals")

	scores, phqAlerts := screening.NewGenerator(src, cfg.PHQWeeks).Generate(users)
	logger.Info().Int("scores", len(scores)).Int("alerts", len(phqAlerts)).Msg("generated PHQ scores")

	dim := calendar.Dimension(src.Today())
	logger.Info().Int("count", len(dim)).Msg("generated date dimension")

	visits := visit.NewGenerator(src).Generate(users)
	logger.Info().Int("count", len(visits)).Msg("generated visits")

	alerts := alert.Merge(moodAlerts, phqAlerts)
	logger.Info().Int("count", len(alerts)).Msg("merged alerts")

	tables := buildTables(users, caregivers, assignments, members, grants, entries, scores, alerts, dim, visits)
	if err := csvout.WriteDir(cfg.OutputDir, tables); err != nil {
		return nil, err
	}
	logger.Info().Str("dir", cfg.OutputDir).Int("tables", len(tables)).Msg("wrote CSV tables")

	summary := &Summary{
		RunID:     uuid.NewString(),
		Seed:      cfg.Seed,
		StartedAt: start.UTC(),
		OutputDir: cfg.OutputDir,
		Tables:    make(map[string]int, len(tables)),
	}
	for _, t := range tables {
		summary.Tables[t.Name] = len(t.Rows)
	}
	summary.DurationMS = time.Since(start).Milliseconds()
	if err := writeManifest(cfg.OutputDir, summary); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		if err := db.LoadTables(ctx, pool, tables); err != nil {
			return nil, err
		}
		logger.Info().Str("schema", db.Schema).Msg("loaded tables into Postgres")
	}

	return summary, nil
}

func writeManifest(dir string, s *Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
