package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/matcher"
	"github.com/jonathan/resume-matcher/internal/store"
)

// loadConfig merges the config file / environment with persistent flags.
// Flags win.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	if verbose {
		cfg.Verbose = true
	}
	if logJSON {
		cfg.LogJSON = true
	}
	return cfg, nil
}

// newLogger builds the command logger from merged configuration.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.LogJSON, cfg.Verbose)
}

// openStore loads and validates configuration, then connects to the store.
// Callers must Close the returned store.
func openStore(ctx context.Context) (*store.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	s, err := store.Connect(ctx, store.Config{DatabaseURL: cfg.DatabaseURL})
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

// parseID parses a document or match identifier, naming the argument in the
// error so mixed-up ids are easy to spot.
func parseID(arg, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q: %w", what, arg, err)
	}
	return id, nil
}

// formatMatchLine renders the one-line result the match command prints.
func formatMatchLine(m *store.Match) string {
	line := fmt.Sprintf("match_id=%s composite=%.2f (skills=%.2f, responsibilities=%.2f, seniority=%.2f, domain=%.2f)",
		m.ID, m.CompositeScore, m.SkillScore, m.ResponsibilityScore, m.SeniorityScore, m.DomainScore)
	if len(m.MissingSkills) > 0 {
		shown := m.MissingSkills
		if len(shown) > matcher.MaxMissingShown {
			shown = shown[:matcher.MaxMissingShown]
		}
		line += "\nTop missing skills: " + strings.Join(shown, ", ")
	}
	return line
}
