package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

// SeedSkills inserts taxonomy entries, skipping canonical names that already
// exist, and returns the number of rows actually inserted. The whole seed
// runs in one transaction so a malformed entry leaves the table untouched.
func (s *Store) SeedSkills(ctx context.Context, entries []taxonomy.SkillEntry) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, entry := range entries {
		aliasList := entry.Aliases
		if aliasList == nil {
			aliasList = []string{} // store [] rather than SQL null
		}
		aliases, err := json.Marshal(aliasList)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal aliases for %s: %w", entry.Name, err)
		}
		tag, err := tx.Exec(ctx,
			`INSERT INTO skills (skill, aliases, category, category_rank)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (skill) DO NOTHING`,
			entry.Name, aliases, entry.Category, entry.CategoryRank)
		if err != nil {
			return 0, fmt.Errorf("failed to insert skill %s: %w", entry.Name, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit skill seed: %w", err)
	}
	return inserted, nil
}

// ListSkills returns every taxonomy entry ordered by category rank then
// canonical name, the same ordering gap reports use.
func (s *Store) ListSkills(ctx context.Context) ([]taxonomy.SkillEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT skill, aliases, category, category_rank
		 FROM skills ORDER BY category_rank, skill`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var entries []taxonomy.SkillEntry
	for rows.Next() {
		var entry taxonomy.SkillEntry
		var aliases []byte
		if err := rows.Scan(&entry.Name, &aliases, &entry.Category, &entry.CategoryRank); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		if err := json.Unmarshal(aliases, &entry.Aliases); err != nil {
			return nil, fmt.Errorf("failed to unmarshal aliases for %s: %w", entry.Name, err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
