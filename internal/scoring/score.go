// Package scoring computes the multi-factor compatibility score between a
// resume and a job description. The calculator is a pure function: no
// persistent state, no randomness, no external calls. Identical inputs
// always yield identical outputs.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

// Component weights for the composite score. Skills dominate, mirroring the
// 45/35/15/5 split the scoring model was calibrated with. The weights sum
// to 1.0 so the composite stays in [0, 1].
const (
	skillOverlapWeight   = 0.45
	responsibilityWeight = 0.35
	seniorityWeight      = 0.15
	domainWeight         = 0.05
)

// Input carries the two documents and the JD's source metadata. The role
// title participates in the JD-side seniority and domain classification;
// the company name is display-only.
type Input struct {
	ResumeText string
	JDText     string
	JDRole     string
	JDCompany  string
}

// Result is the structured score for one resume/JD pair. All scores are in
// [0, 1]. MissingSkills holds canonical names the JD demands but the resume
// does not supply, ordered by taxonomy category priority then alphabetically.
type Result struct {
	Composite             float64  `json:"composite"`
	SkillOverlap          float64  `json:"skill_overlap"`
	ResponsibilityOverlap float64  `json:"responsibility_overlap"`
	SeniorityAlignment    float64  `json:"seniority_alignment"`
	DomainAlignment       float64  `json:"domain_alignment"`
	MatchedSkills         []string `json:"matched_skills,omitempty"`
	MissingSkills         []string `json:"missing_skills,omitempty"`
}

// ScorePair scores a resume against a job description using the given skill
// index and policy. A nil policy uses DefaultPolicy. Empty inputs degrade to
// the documented defaults (empty JD demand scores 1.0, JD with no domain
// bucket scores 1.0) rather than failing.
func ScorePair(in Input, idx *taxonomy.Index, policy *Policy) Result {
	if policy == nil {
		policy = DefaultPolicy()
	}
	jdAll := strings.TrimSpace(in.JDRole + " " + in.JDText)

	var r Result
	r.SkillOverlap, r.MatchedSkills, r.MissingSkills = skillOverlap(in.ResumeText, in.JDText, idx)
	r.ResponsibilityOverlap = responsibilityOverlap(in.ResumeText, in.JDText, policy)
	r.SeniorityAlignment = seniorityAlignment(policy.ClassifySeniority(in.ResumeText), policy.ClassifySeniority(jdAll), policy)
	r.DomainAlignment = domainAlignment(policy.ClassifyDomains(in.ResumeText), policy.ClassifyDomains(jdAll))

	r.Composite = skillOverlapWeight*r.SkillOverlap +
		responsibilityWeight*r.ResponsibilityOverlap +
		seniorityWeight*r.SeniorityAlignment +
		domainWeight*r.DomainAlignment
	return r
}

// skillOverlap computes |demand ∩ supply| / |demand| over canonical skills,
// plus the matched and missing skill names. An empty demand set scores 1.0
// with nothing missing. Ordering of both lists follows the index's
// deterministic ordering (category rank, then name).
func skillOverlap(resumeText, jdText string, idx *taxonomy.Index) (float64, []string, []string) {
	demand := idx.FindAll(jdText)
	if len(demand) == 0 {
		return 1.0, nil, nil
	}

	supply := make(map[string]bool)
	for _, entry := range idx.FindAll(resumeText) {
		supply[entry.Name] = true
	}

	var matched, missing []string
	for _, entry := range demand {
		if supply[entry.Name] {
			matched = append(matched, entry.Name)
		} else {
			missing = append(missing, entry.Name)
		}
	}
	return float64(len(matched)) / float64(len(demand)), matched, missing
}

// responsibilityOverlap counts how many terms of the fixed
// action/responsibility vocabulary occur in each text and scores
// min(1, resumeTerms / max(1, jdTerms)).
func responsibilityOverlap(resumeText, jdText string, policy *Policy) float64 {
	resumeTerms := countTerms(resumeText, policy.ResponsibilityTerms)
	jdTerms := countTerms(jdText, policy.ResponsibilityTerms)

	denom := jdTerms
	if denom < 1 {
		denom = 1
	}
	score := float64(resumeTerms) / float64(denom)
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func countTerms(text string, terms []string) int {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(taxonomy.Normalize(text)) {
		tokens[tok] = true
	}
	n := 0
	for _, term := range terms {
		if tokens[term] {
			n++
		}
	}
	return n
}

// seniorityAlignment scores 1.0 for an exact band match, the policy's
// partial credit for adjacent bands, and 0.0 otherwise. When neither text
// carries a seniority signal the pair counts as aligned; when only one side
// is unclassifiable the partial credit applies, since a mismatch cannot be
// established.
func seniorityAlignment(resume, jd Band, policy *Policy) float64 {
	switch {
	case resume == jd:
		return 1.0
	case resume == BandUnknown || jd == BandUnknown:
		return policy.AdjacentBandCredit
	case resume-jd == 1 || jd-resume == 1:
		return policy.AdjacentBandCredit
	default:
		return 0.0
	}
}

// domainAlignment scores |resume buckets ∩ JD buckets| / |JD buckets|,
// defined as 1.0 when the JD has no identifiable bucket.
func domainAlignment(resumeBuckets, jdBuckets []string) float64 {
	if len(jdBuckets) == 0 {
		return 1.0
	}
	have := make(map[string]bool, len(resumeBuckets))
	for _, b := range resumeBuckets {
		have[b] = true
	}
	overlap := 0
	for _, b := range jdBuckets {
		if have[b] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(jdBuckets))
}
