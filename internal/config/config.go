package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Env            string `mapstructure:"ENV"`
	UserCount      int    `mapstructure:"USER_COUNT"`
	CaregiverCount int    `mapstructure:"CAREGIVER_COUNT"`
	MaxJournals    int    `mapstructure:"MAX_JOURNALS"`
	PHQWeeks       int    `mapstructure:"PHQ_WEEKS"`
	Seed           int64  `mapstructure:"SEED"`
	OutputDir      string `mapstructure:"OUTPUT_DIR"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("USER_COUNT", 20000)
	v.SetDefault("CAREGIVER_COUNT", 20)
	v.SetDefault("MAX_JOURNALS", 10)
	v.SetDefault("PHQ_WEEKS", 4)
	v.SetDefault("SEED", 42)
	v.SetDefault("OUTPUT_DIR", "maatritva_data/data")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("USER_COUNT")
	v.BindEnv("CAREGIVER_COUNT")
	v.BindEnv("MAX_JOURNALS")
	v.BindEnv("PHQ_WEEKS")
	v.BindEnv("SEED")
	v.BindEnv("OUTPUT_DIR")
	v.BindEnv("DATABASE_URL")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the generation parameters describe a producible
// dataset. DATABASE_URL may be empty; the Postgres load is optional.
func (c *Config) Validate() error {
	if c.UserCount < 1 {
		return fmt.Errorf("USER_COUNT must be at least 1, got %d", c.UserCount)
	}
	if c.CaregiverCount < 1 {
		return fmt.Errorf("CAREGIVER_COUNT must be at least 1, got %d", c.CaregiverCount)
	}
	if c.MaxJournals < 5 {
		return fmt.Errorf("MAX_JOURNALS must be at least 5 (the per-user minimum), got %d", c.MaxJournals)
	}
	if c.PHQWeeks < 1 || c.PHQWeeks > 52 {
		return fmt.Errorf("PHQ_WEEKS must be in [1,52], got %d", c.PHQWeeks)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR must not be empty")
	}
	return nil
}
