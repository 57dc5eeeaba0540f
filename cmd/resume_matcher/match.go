package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/matcher"
)

var matchCmd = &cobra.Command{
	Use:   "match <resume-id> <job-id>",
	Short: "Score a resume against a job description",
	Long: "Score the given resume/job pair and record the result. Each run appends " +
		"a new match; earlier results stay retrievable by their ids.",
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	resumeID, err := parseID(args[0], "resume")
	if err != nil {
		return err
	}
	jobID, err := parseID(args[1], "job")
	if err != nil {
		return err
	}

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

	svc := matcher.New(s, nil)
	match, err := svc.RunMatch(ctx, resumeID, jobID)
	if err != nil {
		return err
	}

	log.Debug("match recorded",
		zap.String("match_id", match.ID.String()),
		zap.Float64("composite", match.CompositeScore),
		zap.Int("missing_skills", len(match.MissingSkills)))

	fmt.Fprintln(os.Stdout, formatMatchLine(match))
	return nil
}
