// Package taxonomy provides the controlled skill vocabulary and the lookup
// index used for alias-insensitive skill matching against free text.
package taxonomy

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// SkillEntry is one canonical skill with its alias set and category tag.
type SkillEntry struct {
	// Name is the canonical skill name, unique across the taxonomy.
	Name string
	// Aliases are alternative spellings that resolve to this skill.
	// The canonical name itself always matches and need not be listed.
	Aliases []string
	// Category groups related skills (e.g. "language", "ml").
	Category string
	// CategoryRank is the category's priority: lower ranks sort first in
	// gap reports. Assigned from the order categories first appear in the
	// taxonomy file.
	CategoryRank int
}

// tokenPattern matches a single word of normalized text. It keeps the
// characters that occur inside technical skill names (c++, c#, node.js,
// scikit-learn) and drops everything else.
var tokenPattern = regexp.MustCompile(`[a-z0-9+#.][a-z0-9+#.\-]*`)

// Normalize lowercases text, strips punctuation that never occurs inside a
// skill name, and collapses internal whitespace to single spaces. Both alias
// keys and scored documents go through the same normalization so matching is
// insensitive to case and formatting.
func Normalize(s string) string {
	tokens := tokenPattern.FindAllString(strings.ToLower(s), -1)
	return strings.Join(tokens, " ")
}

// LoadCSV reads a skill taxonomy from a CSV file with a header row of
// skill,aliases,category. The aliases column holds a comma-separated list
// (quoted, since the file itself is comma-delimited). Duplicate canonical
// names are rejected with a ConfigurationError; alias collisions across
// entries are caught later by BuildIndex.
func LoadCSV(path string) ([]SkillEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open taxonomy file %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}
	return entries, nil
}

// ParseCSV reads taxonomy rows from r. See LoadCSV for the expected format.
func ParseCSV(r io.Reader) ([]SkillEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &ConfigurationError{Message: "missing header row", Cause: err}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	skillCol, ok := cols["skill"]
	if !ok {
		return nil, &ConfigurationError{Message: "header row has no 'skill' column"}
	}
	aliasCol, hasAliases := cols["aliases"]
	categoryCol, hasCategory := cols["category"]

	var entries []SkillEntry
	seenNames := make(map[string]string)  // normalized name -> original
	categoryRanks := make(map[string]int) // category -> rank by first appearance
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &ConfigurationError{Message: fmt.Sprintf("malformed row at line %d", line), Cause: err}
		}

		name := strings.TrimSpace(record[skillCol])
		if name == "" {
			continue
		}

		normalized := Normalize(name)
		if prev, dup := seenNames[normalized]; dup {
			return nil, &ConfigurationError{
				Message: fmt.Sprintf("duplicate canonical skill %q at line %d (already defined as %q)", name, line, prev),
			}
		}
		seenNames[normalized] = name

		var aliases []string
		if hasAliases && aliasCol < len(record) {
			for _, alias := range strings.Split(record[aliasCol], ",") {
				alias = strings.TrimSpace(alias)
				if alias != "" {
					aliases = append(aliases, alias)
				}
			}
		}

		category := ""
		if hasCategory && categoryCol < len(record) {
			category = strings.ToLower(strings.TrimSpace(record[categoryCol]))
		}
		rank, ok := categoryRanks[category]
		if !ok {
			rank = len(categoryRanks)
			categoryRanks[category] = rank
		}

		entries = append(entries, SkillEntry{
			Name:         name,
			Aliases:      aliases,
			Category:     category,
			CategoryRank: rank,
		})
	}

	return entries, nil
}
