package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/store"
)

var (
	listLimit    int
	listContains string
)

var listResumesCmd = &cobra.Command{
	Use:   "list-resumes",
	Short: "List ingested resumes",
	RunE:  runListResumes,
}

var listJobsCmd = &cobra.Command{
	Use:   "list-jobs",
	Short: "List ingested job descriptions",
	RunE:  runListJobs,
}

var listMatchesCmd = &cobra.Command{
	Use:   "list-matches",
	Short: "List recorded matches, newest first",
	RunE:  runListMatches,
}

func init() {
	for _, cmd := range []*cobra.Command{listResumesCmd, listJobsCmd, listMatchesCmd} {
		cmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum rows to show")
		rootCmd.AddCommand(cmd)
	}
	listJobsCmd.Flags().StringVar(&listContains, "contains", "", "Filter by substring in company, role or filename")
}

func runListResumes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	docs, err := s.ListDocuments(ctx, store.KindResume, "", listLimit)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(os.Stdout, "No resumes found. Use: resume-matcher ingest-resume --file <resume.txt>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tfilename\tingested")
	for _, d := range docs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.Filename, d.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runListJobs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	docs, err := s.ListDocuments(ctx, store.KindJob, listContains, listLimit)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(os.Stdout, "No job descriptions found. Use: resume-matcher ingest-jd --file <jd.txt>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tcompany\trole\tingested")
	for _, d := range docs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Company, d.Role, d.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runListMatches(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	matches, err := s.ListMatches(ctx, listLimit)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches recorded. Use: resume-matcher match <resume-id> <job-id>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tcomposite\tmissing\tcreated")
	for _, m := range matches {
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n",
			m.ID, m.CompositeScore, strings.Join(m.MissingSkills, ","), m.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
