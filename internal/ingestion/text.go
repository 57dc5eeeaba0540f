// Package ingestion prepares already-extracted document text for storage.
// It owns the normalization policy that determines dedup granularity and
// the lightweight metadata heuristics for job description files. Binary
// formats (PDF/DOCX/HTML) are parsed by external extractors, never here.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// NormalizeText applies the fixed normalization used before hashing and
// storing document text:
//
//   - line endings become LF
//   - trailing whitespace is trimmed from each line
//   - runs of three or more newlines collapse to two
//   - the document is trimmed at both ends
//
// Two documents that differ only in these respects deduplicate to the same
// record; any other whitespace difference (indentation, spacing inside a
// line) keeps them distinct. This policy is deliberately fixed: changing it
// changes which documents the store considers identical.
func NormalizeText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")

	content = blankRuns.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// ReadFile reads a UTF-8 text file and returns its normalized content.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return NormalizeText(string(content)), nil
}
