package scoring

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestIndex(t *testing.T, entries []taxonomy.SkillEntry) *taxonomy.Index {
	t.Helper()
	idx, err := taxonomy.BuildIndex(entries)
	require.NoError(t, err)
	return idx
}

func TestScorePair_MissingSkillScenario(t *testing.T) {
	idx := buildTestIndex(t, []taxonomy.SkillEntry{
		{Name: "Python", Aliases: []string{"py"}, Category: "language", CategoryRank: 0},
		{Name: "Robotics", Aliases: []string{"robot", "robotics"}, Category: "robotics", CategoryRank: 1},
	})

	result := ScorePair(Input{
		ResumeText: "I know Python",
		JDText:     "Looking for a Robotics engineer with Python experience",
	}, idx, nil)

	assert.InDelta(t, 0.5, result.SkillOverlap, 1e-9)
	assert.Equal(t, []string{"Robotics"}, result.MissingSkills)
	assert.Equal(t, []string{"Python"}, result.MatchedSkills)
}

func TestScorePair_EmptyDemandScoresFull(t *testing.T) {
	idx := buildTestIndex(t, []taxonomy.SkillEntry{
		{Name: "Python", Aliases: []string{"py"}},
	})

	result := ScorePair(Input{
		ResumeText: "I know Python",
		JDText:     "We want a friendly team player",
	}, idx, nil)

	assert.Equal(t, 1.0, result.SkillOverlap)
	assert.Empty(t, result.MissingSkills)
}

func TestScorePair_Deterministic(t *testing.T) {
	idx := buildTestIndex(t, []taxonomy.SkillEntry{
		{Name: "Python", Aliases: []string{"py"}, CategoryRank: 0},
		{Name: "Kubernetes", Aliases: []string{"k8s"}, CategoryRank: 1},
		{Name: "Machine Learning", Aliases: []string{"ml"}, CategoryRank: 2},
	})
	in := Input{
		ResumeText: "Senior engineer, 6+ years. Built and deployed ML pipelines on Kubernetes with Python.",
		JDText:     "Design and deploy machine learning services. Python and k8s required. 5+ years.",
		JDRole:     "Senior ML Engineer",
	}

	first := ScorePair(in, idx, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScorePair(in, idx, nil))
	}
}

func TestScorePair_ComponentAndCompositeBounds(t *testing.T) {
	idx := buildTestIndex(t, []taxonomy.SkillEntry{
		{Name: "Python"},
		{Name: "Go", Aliases: []string{"golang"}},
	})

	inputs := []Input{
		{},
		{ResumeText: "Python Go design deploy build maintain", JDText: "Python"},
		{ResumeText: "", JDText: "Python Go principal 10+ years pytorch kafka"},
		{ResumeText: "intern with react", JDText: "staff embedded rtos role", JDRole: "Staff Firmware Engineer"},
	}

	for _, in := range inputs {
		result := ScorePair(in, idx, nil)
		for name, score := range map[string]float64{
			"composite":      result.Composite,
			"skill":          result.SkillOverlap,
			"responsibility": result.ResponsibilityOverlap,
			"seniority":      result.SeniorityAlignment,
			"domain":         result.DomainAlignment,
		} {
			assert.GreaterOrEqual(t, score, 0.0, name)
			assert.LessOrEqual(t, score, 1.0, name)
		}
	}
}

func TestScorePair_MissingSkillsOrdering(t *testing.T) {
	// Categories ranked: ml before language. Within a category, alphabetical.
	idx := buildTestIndex(t, []taxonomy.SkillEntry{
		{Name: "PyTorch", Category: "ml", CategoryRank: 0},
		{Name: "TensorFlow", Category: "ml", CategoryRank: 0},
		{Name: "Go", Category: "language", CategoryRank: 1},
	})

	result := ScorePair(Input{
		ResumeText: "I write documentation",
		JDText:     "Need Go, TensorFlow and PyTorch",
	}, idx, nil)

	assert.Equal(t, []string{"PyTorch", "TensorFlow", "Go"}, result.MissingSkills)
	assert.Equal(t, 0.0, result.SkillOverlap)
}

func TestResponsibilityOverlap(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		resume   string
		jd       string
		expected float64
	}{
		{"full coverage", "design deploy maintain services", "design and deploy services", 1.0},
		{"partial coverage", "I deploy things", "design and deploy services", 1.0 / 3.0},
		{"jd has no terms", "design and build", "a great opportunity", 1.0},
		{"neither has terms", "hello", "world", 0.0},
		{"capped at one", "design deploy build maintain optimize scale", "design work", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, responsibilityOverlap(tt.resume, tt.jd, policy), 1e-9)
		})
	}
}

func TestSeniorityAlignment(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		resume   Band
		jd       Band
		expected float64
	}{
		{"exact match", BandSenior, BandSenior, 1.0},
		{"adjacent bands", BandMid, BandSenior, 0.5},
		{"adjacent reversed", BandSenior, BandMid, 0.5},
		{"two bands apart", BandEntry, BandSenior, 0.0},
		{"both unknown", BandUnknown, BandUnknown, 1.0},
		{"one unknown", BandUnknown, BandStaff, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, seniorityAlignment(tt.resume, tt.jd, policy))
		})
	}
}

func TestDomainAlignment(t *testing.T) {
	tests := []struct {
		name     string
		resume   []string
		jd       []string
		expected float64
	}{
		{"jd has no bucket", []string{"ai"}, nil, 1.0},
		{"full overlap", []string{"ai", "backend"}, []string{"ai"}, 1.0},
		{"half overlap", []string{"ai"}, []string{"ai", "robotics"}, 0.5},
		{"no overlap", []string{"data"}, []string{"firmware"}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, domainAlignment(tt.resume, tt.jd), 1e-9)
		})
	}
}

func TestScorePair_RoleTitleInformsJDClassification(t *testing.T) {
	idx := buildTestIndex(t, nil)

	// Seniority signal lives only in the role title.
	result := ScorePair(Input{
		ResumeText: "Senior engineer with Kafka and Postgres",
		JDText:     "Work on our distributed database platform",
		JDRole:     "Senior Backend Engineer",
	}, idx, nil)

	assert.Equal(t, 1.0, result.SeniorityAlignment)
	assert.Equal(t, 1.0, result.DomainAlignment) // backend bucket on both sides
}
