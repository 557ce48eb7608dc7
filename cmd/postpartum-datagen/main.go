package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Aditi1968/postpartum-health-analytics/internal/config"
	"github.com/Aditi1968/postpartum-health-analytics/internal/pipeline"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "postpartum-datagen",
		Short: "Synthetic maternal mental-health dataset generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the dataset and write CSV tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd)
		},
	}
	cmd.Flags().Int("users", 0, "Number of users to generate (overrides USER_COUNT)")
	cmd.Flags().Int("caregivers", 0, "Number of caregivers to generate (overrides CAREGIVER_COUNT)")
	cmd.Flags().Int64("seed", 0, "Random seed (overrides SEED)")
	cmd.Flags().String("out", "", "Output directory (overrides OUTPUT_DIR)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("postpartum-datagen", version)
		},
	}
}

func runGenerate(cmd *cobra.Command) error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	logger.Info().
		Int("users", cfg.UserCount).
		Int("caregivers", cfg.CaregiverCount).
		Int64("seed", cfg.Seed).
		Str("out", cfg.OutputDir).
		Msg("starting generation")

	summary, err := pipeline.Run(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("generation failed")
	}

	logger.Info().
		Str("run_id", summary.RunID).
		Int64("duration_ms", summary.DurationMS).
		Msg("generation complete")
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("users") {
		cfg.UserCount, _ = cmd.Flags().GetInt("users")
	}
	if cmd.Flags().Changed("caregivers") {
		cfg.CaregiverCount, _ = cmd.Flags().GetInt("caregivers")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir, _ = cmd.Flags().GetString("out")
	}
}
