// Package matcher ties the skill index, score calculator and store together:
// it records new match results and rebuilds human-readable reports from
// stored ones.
package matcher

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/store"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

// Storage is the slice of the store the matcher depends on.
type Storage interface {
	GetDocument(ctx context.Context, id uuid.UUID) (*store.Document, error)
	ListSkills(ctx context.Context) ([]taxonomy.SkillEntry, error)
	CreateMatch(ctx context.Context, input store.MatchInput) (*store.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*store.Match, error)
}

// Service runs matches and builds reports. The skill index is built from the
// stored taxonomy on first use and cached for the life of the service;
// call RefreshIndex after the taxonomy changes. Service follows the engine's
// single-threaded execution model and is not safe for concurrent use.
type Service struct {
	storage Storage
	policy  *scoring.Policy
	index   *taxonomy.Index
}

// New creates a Service. A nil policy uses scoring.DefaultPolicy.
func New(storage Storage, policy *scoring.Policy) *Service {
	if policy == nil {
		policy = scoring.DefaultPolicy()
	}
	return &Service{storage: storage, policy: policy}
}

// RefreshIndex drops the cached skill index so the next match rebuilds it
// from the stored taxonomy.
func (s *Service) RefreshIndex() {
	s.index = nil
}

func (s *Service) skillIndex(ctx context.Context) (*taxonomy.Index, error) {
	if s.index != nil {
		return s.index, nil
	}
	entries, err := s.storage.ListSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill taxonomy: %w", err)
	}
	idx, err := taxonomy.BuildIndex(entries)
	if err != nil {
		return nil, err
	}
	s.index = idx
	return idx, nil
}

func (s *Service) getDocument(ctx context.Context, kind string, id uuid.UUID) (*store.Document, error) {
	doc, err := s.storage.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.Kind != kind {
		return nil, &store.NotFoundError{Kind: kind, ID: id.String()}
	}
	return doc, nil
}

// RunMatch loads both documents, scores the pair and persists a new match
// row. History is append-only: running the same pair again creates a new,
// distinct match. Returns a NotFoundError when either identity is absent or
// is a document of the wrong kind.
func (s *Service) RunMatch(ctx context.Context, resumeID, jobID uuid.UUID) (*store.Match, error) {
	resume, err := s.getDocument(ctx, store.KindResume, resumeID)
	if err != nil {
		return nil, err
	}
	job, err := s.getDocument(ctx, store.KindJob, jobID)
	if err != nil {
		return nil, err
	}

	idx, err := s.skillIndex(ctx)
	if err != nil {
		return nil, err
	}

	result := scoring.ScorePair(scoring.Input{
		ResumeText: resume.Text,
		JDText:     job.Text,
		JDRole:     job.Role,
		JDCompany:  job.Company,
	}, idx, s.policy)

	match, err := s.storage.CreateMatch(ctx, store.MatchInput{
		ResumeID:            resume.ID,
		JobID:               job.ID,
		CompositeScore:      result.Composite,
		SkillScore:          result.SkillOverlap,
		ResponsibilityScore: result.ResponsibilityOverlap,
		SeniorityScore:      result.SeniorityAlignment,
		DomainScore:         result.DomainAlignment,
		MissingSkills:       result.MissingSkills,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record match: %w", err)
	}
	return match, nil
}
