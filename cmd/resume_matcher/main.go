// Package main provides the resume-matcher CLI: ingestion, matching and
// reporting against the content-addressed store.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-matcher",
	Short: "Match resumes against job descriptions",
	Long: "resume-matcher scores candidate resumes against job descriptions using a " +
		"controlled skill taxonomy, and stores documents and match history " +
		"deduplicated by content hash.",
	SilenceUsage: true,
}

var (
	configPath string
	dbURL      string
	verbose    bool
	logJSON    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "PostgreSQL connection URL (overrides config and DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log in JSON format")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
