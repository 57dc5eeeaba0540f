package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/matcher"
)

var reportCmd = &cobra.Command{
	Use:   "report <match-id>",
	Short: "Print the summary for a recorded match",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	matchID, err := parseID(args[0], "match")
	if err != nil {
		return err
	}

	s, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	svc := matcher.New(s, nil)
	report, err := svc.Report(ctx, matchID)
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, report.Summary())
	return nil
}
