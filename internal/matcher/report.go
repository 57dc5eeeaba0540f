package matcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/store"
)

// Report joins a stored match with its resume and job metadata for display.
type Report struct {
	MatchID  uuid.UUID `json:"match_id"`
	ResumeID uuid.UUID `json:"resume_id"`
	JobID    uuid.UUID `json:"job_id"`

	Resume  string `json:"resume"` // source filename
	Company string `json:"company"`
	Role    string `json:"role"`

	CompositeScore      float64  `json:"composite_score"`
	SkillScore          float64  `json:"skill_score"`
	ResponsibilityScore float64  `json:"responsibility_score"`
	SeniorityScore      float64  `json:"seniority_score"`
	DomainScore         float64  `json:"domain_score"`
	MissingSkills       []string `json:"missing_skills,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Report rebuilds the display summary for a stored match. Returns a
// NotFoundError when the match does not exist. The referenced documents are
// protected by foreign keys, so a match without its documents means the
// store is corrupt and is reported as an error rather than a partial report.
func (s *Service) Report(ctx context.Context, matchID uuid.UUID) (*Report, error) {
	match, err := s.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, &store.NotFoundError{Kind: "match", ID: matchID.String()}
	}

	resume, err := s.storage.GetDocument(ctx, match.ResumeID)
	if err != nil {
		return nil, err
	}
	job, err := s.storage.GetDocument(ctx, match.JobID)
	if err != nil {
		return nil, err
	}
	if resume == nil || job == nil {
		return nil, fmt.Errorf("match %s references missing documents", matchID)
	}

	return &Report{
		MatchID:             match.ID,
		ResumeID:            resume.ID,
		JobID:               job.ID,
		Resume:              resume.Filename,
		Company:             job.Company,
		Role:                job.Role,
		CompositeScore:      match.CompositeScore,
		SkillScore:          match.SkillScore,
		ResponsibilityScore: match.ResponsibilityScore,
		SeniorityScore:      match.SeniorityScore,
		DomainScore:         match.DomainScore,
		MissingSkills:       match.MissingSkills,
		CreatedAt:           match.CreatedAt,
	}, nil
}

// MaxMissingShown caps how many gap entries the text output displays; the
// stored list is never truncated.
const MaxMissingShown = 10

// Summary renders the report as the plain-text form the CLI prints.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Match %s | Resume %s -> %s / %s\n", r.MatchID, r.Resume, r.Company, r.Role)
	fmt.Fprintf(&b, "Composite: %.2f  [skills %.2f | responsibilities %.2f | seniority %.2f | domain %.2f]\n",
		r.CompositeScore, r.SkillScore, r.ResponsibilityScore, r.SeniorityScore, r.DomainScore)

	if len(r.MissingSkills) > 0 {
		shown := r.MissingSkills
		if len(shown) > MaxMissingShown {
			shown = shown[:MaxMissingShown]
		}
		fmt.Fprintf(&b, "Missing skills: %s", strings.Join(shown, ", "))
		if len(r.MissingSkills) > len(shown) {
			fmt.Fprintf(&b, " (+%d more)", len(r.MissingSkills)-len(shown))
		}
		b.WriteString("\n")
	}
	return b.String()
}
