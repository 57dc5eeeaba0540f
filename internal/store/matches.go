package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Match is a persisted score result for one (resume, job) pair. Matches are
// append-only: re-running a match inserts a new row and never updates an
// existing one.
type Match struct {
	ID                  uuid.UUID `json:"id"`
	ResumeID            uuid.UUID `json:"resume_id"`
	JobID               uuid.UUID `json:"job_id"`
	CompositeScore      float64   `json:"composite_score"`
	SkillScore          float64   `json:"skill_score"`
	ResponsibilityScore float64   `json:"responsibility_score"`
	SeniorityScore      float64   `json:"seniority_score"`
	DomainScore         float64   `json:"domain_score"`
	MissingSkills       []string  `json:"missing_skills"`
	CreatedAt           time.Time `json:"created_at"`
}

// MatchInput carries the fields for a new match row.
type MatchInput struct {
	ResumeID            uuid.UUID
	JobID               uuid.UUID
	CompositeScore      float64
	SkillScore          float64
	ResponsibilityScore float64
	SeniorityScore      float64
	DomainScore         float64
	MissingSkills       []string
}

const matchColumns = `id, resume_id, job_id, composite_score, skill_score,
	responsibility_score, seniority_score, domain_score, missing_skills, created_at`

func scanMatch(row pgx.Row) (*Match, error) {
	var m Match
	var missing []byte
	err := row.Scan(&m.ID, &m.ResumeID, &m.JobID, &m.CompositeScore, &m.SkillScore,
		&m.ResponsibilityScore, &m.SeniorityScore, &m.DomainScore, &missing, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	if err := json.Unmarshal(missing, &m.MissingSkills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal missing skills: %w", err)
	}
	return &m, nil
}

// CreateMatch inserts a new match row and returns it.
func (s *Store) CreateMatch(ctx context.Context, input MatchInput) (*Match, error) {
	missing := input.MissingSkills
	if missing == nil {
		missing = []string{} // store [] rather than SQL null
	}
	missingJSON, err := json.Marshal(missing)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal missing skills: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	match, err := scanMatch(tx.QueryRow(ctx,
		`INSERT INTO matches (resume_id, job_id, composite_score, skill_score,
		                      responsibility_score, seniority_score, domain_score, missing_skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+matchColumns,
		input.ResumeID, input.JobID, input.CompositeScore, input.SkillScore,
		input.ResponsibilityScore, input.SeniorityScore, input.DomainScore, missingJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit match insert: %w", err)
	}
	return match, nil
}

// GetMatch retrieves a match by id. Returns nil when absent.
func (s *Store) GetMatch(ctx context.Context, id uuid.UUID) (*Match, error) {
	return scanMatch(s.pool.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = $1`, id))
}

// ListMatches retrieves recent matches, newest first.
func (s *Store) ListMatches(ctx context.Context, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+matchColumns+` FROM matches ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var missing []byte
		if err := rows.Scan(&m.ID, &m.ResumeID, &m.JobID, &m.CompositeScore, &m.SkillScore,
			&m.ResponsibilityScore, &m.SeniorityScore, &m.DomainScore, &missing, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if err := json.Unmarshal(missing, &m.MissingSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal missing skills: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
