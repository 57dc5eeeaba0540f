package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/store"
)

var ingestResumeCmd = &cobra.Command{
	Use:   "ingest-resume",
	Short: "Ingest a resume from an extracted text file",
	Long: "Ingest resume text into the content-addressed store. The file must " +
		"already be plain text; extraction from PDF or DOCX happens upstream.",
	RunE: runIngestResume,
}

var resumeFile string

func init() {
	ingestResumeCmd.Flags().StringVarP(&resumeFile, "file", "f", "", "Path to resume text file (required)")
	ingestResumeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(ingestResumeCmd)
}

func runIngestResume(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	switch strings.ToLower(filepath.Ext(resumeFile)) {
	case ".pdf", ".docx", ".doc", ".html":
		return fmt.Errorf("binary formats are not parsed here: extract %s to plain text first", resumeFile)
	}

	text, err := ingestion.ReadFile(resumeFile)
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

	doc, created, err := s.UpsertDocument(ctx, store.KindResume, text, store.DocumentMeta{
		Filename: filepath.Base(resumeFile),
	})
	if err != nil {
		return err
	}

	log.Debug("resume ingested",
		zap.String("id", doc.ID.String()),
		zap.String("hash", doc.Hash),
		zap.Bool("created", created))

	fmt.Fprintf(os.Stdout, "Resume %s id=%s\n", createdWord(created), doc.ID)
	return nil
}

func createdWord(created bool) string {
	if created {
		return "created"
	}
	return "exists"
}
