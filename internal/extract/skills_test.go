package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkills_SpecExample(t *testing.T) {
	skills := Skills("Requires SQL and Python, Bachelor's Degree preferred")

	assert.True(t, skills.Contains("SQL"))
	assert.True(t, skills.Contains("Python"))
	assert.True(t, skills.Contains("Bachelor's Degree"))
}

func TestSkills_CanonicalCasing(t *testing.T) {
	skills := Skills("strong sql and PYTHON skills, power bi a plus")

	assert.True(t, skills.Contains("SQL"))
	assert.True(t, skills.Contains("Python"))
	assert.True(t, skills.Contains("Power BI"))
	// the input casing must not leak through
	assert.False(t, skills.Contains("sql"))
	assert.False(t, skills.Contains("PYTHON"))
}

func TestSkills_WholeWordOnly(t *testing.T) {
	// "r" inside a word must not match the R language
	skills := Skills("our market research team")
	assert.False(t, skills.Contains("R"))
}

func TestSkills_NoDuplicates(t *testing.T) {
	skills := Skills("SQL, sql, SQL and more SQL. Python python Python.")
	assert.Equal(t, 2, skills.Cardinality())
}

func TestSkills_DegreeVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bsc", "BSc in Statistics required"},
		{"phd", "PhD preferred"},
		{"degree in", "Degree in Computer Science or related field"},
		{"bachelors", "bachelor's degree preferred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := Skills(tt.text)
			assert.Greater(t, skills.Cardinality(), 0, "expected a degree-phrase match in %q", tt.text)
		})
	}
}

func TestSkills_NoCaseInsensitiveDuplicates(t *testing.T) {
	// vocab adds canonical "Bachelor's Degree"; the degree regex must not
	// add a second, differently-cased copy
	skills := Skills("bachelor's degree required, Bachelor's Degree preferred")

	matches := 0
	for _, s := range skills.ToSlice() {
		if strings.EqualFold(s, "bachelor's degree") {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestSkills_EmptyInput(t *testing.T) {
	assert.Equal(t, 0, Skills("").Cardinality())
	assert.Equal(t, 0, Skills("   \n\t").Cardinality())
}

func TestSkills_SoftSkills(t *testing.T) {
	skills := Skills("Excellent communication and problem-solving abilities")
	assert.True(t, skills.Contains("Communication"))
	assert.True(t, skills.Contains("Problem Solving"))
}

func TestSortedSkills(t *testing.T) {
	skills := Skills("Python, SQL and Excel")
	sorted := SortedSkills(skills)
	assert.Equal(t, []string{"Excel", "Python", "SQL"}, sorted)
}
