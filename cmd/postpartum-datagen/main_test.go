package main

import (
	"testing"

	"github.com/Aditi1968/postpartum-health-analytics/internal/config"
)

func TestApplyFlags_Overrides(t *testing.T) {
	cmd := generateCmd()
	if err := cmd.Flags().Set("users", "123"); err != nil {
		t.Fatalf("set users flag: %v", err)
	}
	if err := cmd.Flags().Set("seed", "99"); err != nil {
		t.Fatalf("set seed flag: %v", err)
	}

	cfg := &config.Config{UserCount: 20000, CaregiverCount: 20, Seed: 42, OutputDir: "maatritva_data/data"}
	applyFlags(cmd, cfg)

	if cfg.UserCount != 123 {
		t.Errorf("expected users flag to override, got %d", cfg.UserCount)
	}
	if cfg.Seed != 99 {
		t.Errorf("expected seed flag to override, got %d", cfg.Seed)
	}
	if cfg.CaregiverCount != 20 {
		t.Errorf("unset flag must not touch config, got %d", cfg.CaregiverCount)
	}
	if cfg.OutputDir != "maatritva_data/data" {
		t.Errorf("unset flag must not touch config, got %s", cfg.OutputDir)
	}
}
