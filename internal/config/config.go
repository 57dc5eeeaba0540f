// Package config provides configuration loading and validation for the CLI.
// The store receives its settings as an explicit value; nothing reads
// process-wide database state at call time.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Config is the CLI configuration, loadable from a JSON file with
// environment fallbacks. Flags merged on top win.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string `json:"database_url" validate:"required"`
	// SkillsFile is the default taxonomy CSV path for seed-skills.
	SkillsFile string `json:"skills_file,omitempty"`
	// Verbose enables debug logging.
	Verbose bool `json:"verbose,omitempty"`
	// LogJSON switches log output to JSON encoding.
	LogJSON bool `json:"log_json,omitempty"`
}

var validate = validator.New()

// Load reads configuration from an optional JSON file, then fills empty
// fields from the environment (DATABASE_URL, SKILLS_FILE). The result is not
// yet validated; callers merge flag values first and then call Validate.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.SkillsFile == "" {
		cfg.SkillsFile = os.Getenv("SKILLS_FILE")
	}

	return &cfg, nil
}

// Validate checks that the configuration is complete enough to run commands
// that touch the database.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: database URL is required (flag, config file or DATABASE_URL): %w", err)
	}
	return nil
}
