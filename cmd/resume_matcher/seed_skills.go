package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

var seedSkillsCmd = &cobra.Command{
	Use:   "seed-skills",
	Short: "Load the skill taxonomy from a CSV file",
	Long: "Load skill taxonomy rows (skill,aliases,category) into the database. " +
		"Rows with duplicate canonical names or alias collisions — including " +
		"collisions with skills already stored — are rejected before anything " +
		"is written.",
	RunE: runSeedSkills,
}

var skillsFile string

func init() {
	seedSkillsCmd.Flags().StringVarP(&skillsFile, "file", "f", "", "Path to taxonomy CSV (defaults to config skills_file)")
	rootCmd.AddCommand(seedSkillsCmd)
}

func runSeedSkills(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, cfg, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	path := skillsFile
	if path == "" {
		path = cfg.SkillsFile
	}
	if path == "" {
		return fmt.Errorf("no taxonomy file: pass --file or set skills_file in config")
	}

	entries, err := taxonomy.LoadCSV(path)
	if err != nil {
		return err
	}

	// Validate the new rows together with what is already stored, so an
	// alias collision is caught now rather than at the next match.
	existing, err := s.ListSkills(ctx)
	if err != nil {
		return err
	}
	if _, err := taxonomy.BuildIndex(append(existing, entries...)); err != nil {
		return err
	}

	inserted, err := s.SeedSkills(ctx, entries)
	if err != nil {
		return err
	}

	log.Debug("taxonomy seeded",
		zap.String("file", path),
		zap.Int("rows", len(entries)),
		zap.Int("inserted", inserted))

	fmt.Fprintf(os.Stdout, "Inserted %d skills (%d rows in file)\n", inserted, len(entries))
	return nil
}
