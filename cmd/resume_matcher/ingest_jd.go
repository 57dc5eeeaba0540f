package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/store"
)

var ingestJDCmd = &cobra.Command{
	Use:   "ingest-jd",
	Short: "Ingest a job description from an extracted text file",
	Long: "Ingest job description text into the content-addressed store. Company " +
		"and role come from '# Company:' / '# Role:' header lines, the filename, " +
		"or the flags below (flags win).",
	RunE: runIngestJD,
}

var (
	jdFile    string
	jdCompany string
	jdRole    string
	jdSource  string
)

func init() {
	ingestJDCmd.Flags().StringVarP(&jdFile, "file", "f", "", "Path to job description text file (required)")
	ingestJDCmd.Flags().StringVar(&jdCompany, "company", "", "Company name override")
	ingestJDCmd.Flags().StringVar(&jdRole, "role", "", "Role title override")
	ingestJDCmd.Flags().StringVar(&jdSource, "source-url", "", "Where the posting was found")
	ingestJDCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(ingestJDCmd)
}

func runIngestJD(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, err := ingestion.ReadFile(jdFile)
	if err != nil {
		return err
	}

	meta := ingestion.ParseJobMeta(text, jdFile)
	if jdCompany != "" {
		meta.Company = jdCompany
	}
	if jdRole != "" {
		meta.Role = jdRole
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

	doc, created, err := s.UpsertDocument(ctx, store.KindJob, text, store.DocumentMeta{
		Filename:  filepath.Base(jdFile),
		Company:   meta.Company,
		Role:      meta.Role,
		SourceURL: jdSource,
	})
	if err != nil {
		return err
	}

	log.Debug("job description ingested",
		zap.String("id", doc.ID.String()),
		zap.String("company", meta.Company),
		zap.String("role", meta.Role),
		zap.Bool("created", created))

	fmt.Fprintf(os.Stdout, "JD %s id=%s company=%q role=%q\n", createdWord(created), doc.ID, doc.Company, doc.Role)
	return nil
}
