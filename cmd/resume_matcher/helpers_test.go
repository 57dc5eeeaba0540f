package main

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/matcher"
	"github.com/jonathan/resume-matcher/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id := uuid.New()
	parsed, err := parseID(id.String(), "resume")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = parseID("9999", "match")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid match id "9999"`)
}

func TestFormatMatchLine(t *testing.T) {
	m := &store.Match{
		ID:                  uuid.New(),
		CompositeScore:      0.72,
		SkillScore:          0.5,
		ResponsibilityScore: 1.0,
		SeniorityScore:      1.0,
		DomainScore:         0.5,
		MissingSkills:       []string{"Robotics", "Kubernetes"},
	}

	line := formatMatchLine(m)
	assert.Contains(t, line, m.ID.String())
	assert.Contains(t, line, "composite=0.72")
	assert.Contains(t, line, "Top missing skills: Robotics, Kubernetes")
}

func TestFormatMatchLine_NoGaps(t *testing.T) {
	m := &store.Match{ID: uuid.New(), CompositeScore: 1.0}
	assert.NotContains(t, formatMatchLine(m), "missing")
}

func TestFormatMatchLine_CapsMissingSkills(t *testing.T) {
	m := &store.Match{ID: uuid.New()}
	for i := 0; i < matcher.MaxMissingShown+2; i++ {
		m.MissingSkills = append(m.MissingSkills, fmt.Sprintf("Skill%02d", i))
	}

	line := formatMatchLine(m)
	assert.Contains(t, line, fmt.Sprintf("Skill%02d", matcher.MaxMissingShown-1))
	assert.NotContains(t, line, fmt.Sprintf("Skill%02d", matcher.MaxMissingShown))
}

func TestCreatedWord(t *testing.T) {
	assert.Equal(t, "created", createdWord(true))
	assert.Equal(t, "exists", createdWord(false))
}
