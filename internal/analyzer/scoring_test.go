package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillOverlap(t *testing.T) {
	tests := []struct {
		name         string
		resumeSkills []string
		jobSkills    []string
		expected     float64
	}{
		{"Two of three", []string{"python", "react", "javascript"}, []string{"python", "react", "kubernetes"}, 2.0 / 3.0},
		{"Full overlap", []string{"python"}, []string{"python"}, 1.0},
		{"No overlap", []string{"python"}, []string{"rust"}, 0.0},
		{"Empty job skills", []string{"python"}, []string{}, 0.0},
		{"Empty resume skills", []string{}, []string{"python"}, 0.0},
		{"Normalization applies", []string{"Python", "React.js"}, []string{"python", "react"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SkillOverlap(tt.resumeSkills, tt.jobSkills), 0.001)
		})
	}
}

func TestEducationMatch(t *testing.T) {
	tests := []struct {
		name      string
		education []string
		expected  bool
	}{
		{"Bachelor's degree", []string{"Bachelor's in Computer Science"}, true},
		{"Master's degree", []string{"Master of Science, MIT"}, true},
		{"Abbreviated B.S.", []string{"B.S. Mathematics"}, true},
		{"Certificate only", []string{"Certificate in Web Development"}, false},
		{"Empty", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EducationMatch(tt.education))
		})
	}
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		name         string
		skillOverlap float64
		expScore     int
		eduMatch     bool
		expected     int
	}{
		{"High match", 0.8, 8, true, 84},
		{"Mid match without degree", 0.5, 5, false, 52},
		{"Zero everything", 0.0, 0, false, 12},
		{"Perfect", 1.0, 10, true, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FinalScore(tt.skillOverlap, tt.expScore, tt.eduMatch)
			assert.Equal(t, tt.expected, score)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestMissingSkills(t *testing.T) {
	resumeSkills := []string{"python", "react"}
	jobSkills := []string{"python", "kubernetes", "docker", "scala"}
	responsibilities := []string{
		"Must have kubernetes experience",
		"Operate docker containers and docker registries",
	}

	missing := MissingSkills(resumeSkills, jobSkills, responsibilities)
	assert.Contains(t, missing, "kubernetes", "matched by requirement phrase")
	assert.Contains(t, missing, "docker", "mentioned at least twice")
	assert.NotContains(t, missing, "python", "already on the resume")
	assert.NotContains(t, missing, "scala", "mentioned once, no requirement phrase")
}

func TestMissingSkillsEmptyJob(t *testing.T) {
	assert.Empty(t, MissingSkills([]string{"python"}, nil, nil))
}

func TestStrengths(t *testing.T) {
	t.Run("strong alignment", func(t *testing.T) {
		strengths := Strengths(0.8, 6, true)
		assert.Len(t, strengths, 3)
		assert.Contains(t, strengths[0], "Strong alignment")
		assert.Contains(t, strengths[1], "Extensive")
		assert.Contains(t, strengths[2], "educational")
	})

	t.Run("good foundation", func(t *testing.T) {
		strengths := Strengths(0.5, 3, false)
		assert.Contains(t, strengths[0], "Good foundation")
		assert.Contains(t, strengths[1], "Relevant professional experience")
	})

	t.Run("generic fallback when nothing triggers", func(t *testing.T) {
		strengths := Strengths(0.1, 0, false)
		assert.Len(t, strengths, 1)
		assert.Contains(t, strengths[0], "Transferable")
	})
}

func TestImprovements(t *testing.T) {
	t.Run("names top three missing skills", func(t *testing.T) {
		suggestions := Improvements([]string{"kubernetes", "docker", "terraform", "kafka"}, 0.8)
		assert.Len(t, suggestions, 1)
		assert.Contains(t, suggestions[0], "kubernetes, docker, terraform")
		assert.NotContains(t, suggestions[0], "kafka")
	})

	t.Run("low overlap suggestion", func(t *testing.T) {
		suggestions := Improvements(nil, 0.3)
		assert.Len(t, suggestions, 1)
		assert.Contains(t, suggestions[0], "Develop additional skills")
	})

	t.Run("generic fallback", func(t *testing.T) {
		suggestions := Improvements(nil, 0.9)
		assert.Len(t, suggestions, 1)
		assert.Contains(t, suggestions[0], "measurable impact")
	})
}
