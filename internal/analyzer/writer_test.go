package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/normalize"
	"github.com/jonathan/jobmatch/internal/types"
)

// fakeClient returns scripted responses in order.
type fakeClient struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.next()
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.next()
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) next() (string, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

func testResume() *types.ResumeRecord {
	return &types.ResumeRecord{
		Name:              "Jane Doe",
		YearsOfExperience: 6,
		CurrentTitle:      "Backend Engineer",
		Skills:            []string{"python", "react"},
		Education:         []string{"B.S. Computer Science"},
		WorkHistory:       []types.WorkEntry{},
	}
}

func testJob() *types.JobRecord {
	return &types.JobRecord{
		JobTitle:         "Software Engineer",
		Company:          "Vercel",
		Skills:           []string{"python", "react", "kubernetes"},
		Responsibilities: []string{"Must have kubernetes experience"},
		ExperienceLevel:  "Senior",
		JobURL:           "https://jobs.lever.co/vercel/xyz123",
	}
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected int
	}{
		{"Bare integer", "8", 8},
		{"Integer in prose", "I would rate this candidate 7 out of 10.", 7},
		{"Clamped high", "15", 10},
		{"Clamped negative", "-3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(&fakeClient{responses: []string{tt.response}})
			score, err := w.ExperienceScore(context.Background(), testResume(), testJob())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, score)
		})
	}

	t.Run("no integer is an error", func(t *testing.T) {
		w := NewWriter(&fakeClient{responses: []string{"a strong fit"}})
		_, err := w.ExperienceScore(context.Background(), testResume(), testJob())
		assert.Error(t, err)
	})

	t.Run("call failure propagates", func(t *testing.T) {
		w := NewWriter(&fakeClient{errs: []error{errors.New("unavailable")}})
		_, err := w.ExperienceScore(context.Background(), testResume(), testJob())
		assert.Error(t, err)
	})
}

func TestLimitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"Under limit unchanged", "One. Two.", 3, "One. Two."},
		{"At limit unchanged", "One. Two. Three.", 3, "One. Two. Three."},
		{"Over limit truncated", "One. Two. Three. Four.", 3, "One. Two. Three."},
		{"Exclamations and questions", "One! Two? Three. Four!", 2, "One. Two."},
		{"Empty fragments dropped", "One... Two. Three. Four.", 3, "One. Two. Three."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LimitSentences(tt.input, tt.max))
		})
	}
}

func TestLimitCoverLetter(t *testing.T) {
	t.Run("300 words unchanged", func(t *testing.T) {
		letter := strings.TrimSpace(strings.Repeat("word ", 300))
		assert.Equal(t, letter, LimitCoverLetter(letter))
	})

	t.Run("400 words truncated with terminal punctuation", func(t *testing.T) {
		letter := strings.Repeat("word ", 400)
		result := LimitCoverLetter(letter)
		assert.Equal(t, coverLetterTruncateAt, normalize.CountWords(result))
		assert.True(t, strings.HasSuffix(result, "."))
	})

	t.Run("existing terminal punctuation kept", func(t *testing.T) {
		letter := strings.TrimSpace(strings.Repeat("word! ", 400))
		result := LimitCoverLetter(letter)
		assert.True(t, strings.HasSuffix(result, "!"))
		assert.False(t, strings.HasSuffix(result, "!."))
	})
}

func TestGenerateSummaryTrims(t *testing.T) {
	w := NewWriter(&fakeClient{responses: []string{"One. Two. Three. Four. Five."}})
	summary, err := w.GenerateSummary(context.Background(), testResume(), testJob(), 84)
	require.NoError(t, err)
	assert.Equal(t, "One. Two. Three.", summary)
}

func TestGenerateRecruiterMessageTrims(t *testing.T) {
	w := NewWriter(&fakeClient{responses: []string{"One. Two. Three."}})
	msg, err := w.GenerateRecruiterMessage(context.Background(), testResume(), testJob(), 84)
	require.NoError(t, err)
	assert.Equal(t, "One. Two.", msg)
}
