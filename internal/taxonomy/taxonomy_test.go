package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Machine Learning", "machine learning"},
		{"strips punctuation", "Python, Go; and Rust!", "python go and rust"},
		{"keeps technical characters", "C++ and C# with Node.js", "c++ and c# with node.js"},
		{"collapses whitespace", "deep\t\tlearning \n models", "deep learning models"},
		{"empty input", "", ""},
		{"only punctuation", "(((", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestParseCSV_BasicTaxonomy(t *testing.T) {
	input := `skill,aliases,category
Python,"py,python3",language
Machine Learning,"ml,deep learning",ml
Robotics,"robot,ros",robotics
`
	entries, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Python", entries[0].Name)
	assert.Equal(t, []string{"py", "python3"}, entries[0].Aliases)
	assert.Equal(t, "language", entries[0].Category)

	// Category ranks follow first appearance in the file.
	assert.Equal(t, 0, entries[0].CategoryRank)
	assert.Equal(t, 1, entries[1].CategoryRank)
	assert.Equal(t, 2, entries[2].CategoryRank)
}

func TestParseCSV_SharedCategoryKeepsRank(t *testing.T) {
	input := `skill,aliases,category
Python,,language
Go,golang,language
PyTorch,torch,ml
`
	entries, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, entries[0].CategoryRank, entries[1].CategoryRank)
	assert.Equal(t, 1, entries[2].CategoryRank)
}

func TestParseCSV_DuplicateCanonicalName(t *testing.T) {
	input := `skill,aliases,category
Python,py,language
python,python3,language
`
	_, err := ParseCSV(strings.NewReader(input))
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "duplicate canonical skill")
}

func TestParseCSV_MissingSkillColumn(t *testing.T) {
	input := `name,aliases,category
Python,py,language
`
	_, err := ParseCSV(strings.NewReader(input))
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestParseCSV_SkipsBlankSkillRows(t *testing.T) {
	input := `skill,aliases,category
Python,py,language
,orphan,language
`
	entries, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
