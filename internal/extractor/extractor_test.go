package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves canned page text per URL and records the order of
// fetch attempts.
type fakeFetcher struct {
	pages    map[string]string
	fetched  []string
	errorAll bool
}

func (f *fakeFetcher) Fetch(_ context.Context, urlStr string) (string, error) {
	f.fetched = append(f.fetched, urlStr)
	if f.errorAll {
		return "", errors.New("fetch failed")
	}
	text, ok := f.pages[urlStr]
	if !ok {
		return "", errors.New("no such page")
	}
	return text, nil
}

const postingText = `Job Title: Senior Backend Engineer
Company: Acme Corp
We are looking for someone with python and kubernetes experience.
Requirements: 5+ years building services with go and postgresql.
- Design and operate distributed services
- Own the deployment pipeline end to end
- Mentor junior engineers
1) Review code across the backend team`

func TestExtractPrimarySuccess(t *testing.T) {
	primary := "https://jobs.lever.co/acme/backend-123"
	f := &fakeFetcher{pages: map[string]string{primary: postingText}}

	rec, err := New(f).Extract(context.Background(), primary, "")
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", rec.JobTitle)
	assert.Equal(t, "Acme", rec.Company, "lever path segment wins over labeled line")
	assert.Equal(t, primary, rec.JobURL)
	assert.Equal(t, "Senior", rec.ExperienceLevel)
	assert.Contains(t, rec.Skills, "python")
	assert.Contains(t, rec.Skills, "kubernetes")
	assert.Contains(t, rec.Skills, "go")
	assert.LessOrEqual(t, len(rec.Skills), 10)
	assert.LessOrEqual(t, len(rec.Responsibilities), 6)
	assert.Contains(t, rec.Responsibilities, "Design and operate distributed services")
	assert.Contains(t, rec.Responsibilities, "Review code across the backend team")
	assert.Equal(t, []string{primary}, f.fetched, "backup and default not attempted")
}

func TestExtractFallsBackToBackup(t *testing.T) {
	primary := "https://jobs.lever.co/acme/gone"
	backup := "https://boards.greenhouse.io/acme/jobs/123"
	f := &fakeFetcher{pages: map[string]string{backup: postingText}}

	rec, err := New(f).Extract(context.Background(), primary, backup)
	require.NoError(t, err)
	assert.Equal(t, backup, rec.JobURL)
	assert.Equal(t, []string{primary, backup}, f.fetched)
}

func TestExtractNonAllowedURLsFallThroughToDefault(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{DefaultJobURL: postingText}}

	rec, err := New(f).Extract(context.Background(), "https://evil.example.com/a", "https://linkedin.com/jobs/1")
	require.NoError(t, err)
	assert.Equal(t, DefaultJobURL, rec.JobURL)
	assert.Equal(t, []string{DefaultJobURL}, f.fetched, "disallowed URLs never attempted")
}

func TestExtractDefaultURLCompany(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{DefaultJobURL: "An empty shell page"}}

	rec, err := New(f).Extract(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "Vercel", rec.Company, "derived from the lever path segment")
	assert.Equal(t, "Software Engineer", rec.JobTitle)
}

func TestExtractAllCandidatesFail(t *testing.T) {
	f := &fakeFetcher{errorAll: true}

	_, err := New(f).Extract(context.Background(), "https://jobs.lever.co/a/1", "https://jobs.lever.co/b/2")
	require.Error(t, err)
	assert.Len(t, f.fetched, 3, "primary, backup, then default")
	assert.Equal(t, DefaultJobURL, f.fetched[2])
}

func TestFindJobTitle(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Labeled line", "Job Title: Staff Engineer\nmore text", "Staff Engineer"},
		{"Position label", "Position - Data Scientist", "Data Scientist"},
		{"Hiring phrase", "We are hiring a Frontend Engineer to join our team", "Frontend Engineer"},
		{"Seeking phrase", "Acme is seeking an iOS Developer for the mobile team", "iOS Developer"},
		{"No signal defaults", "Welcome to our careers page", "Software Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, findJobTitle(tt.text))
		})
	}
}

func TestFindCompany(t *testing.T) {
	t.Run("lever path segment", func(t *testing.T) {
		assert.Equal(t, "Stripe", findCompany("irrelevant", "https://jobs.lever.co/stripe/abc"))
	})
	t.Run("labeled line", func(t *testing.T) {
		assert.Equal(t, "Acme Corp", findCompany("Company: Acme Corp\n", "https://boards.greenhouse.io/x/1"))
	})
	t.Run("default", func(t *testing.T) {
		assert.Equal(t, "Company", findCompany("nothing here", "https://boards.greenhouse.io/x/1"))
	})
}

func TestFindSkillsWordBoundaries(t *testing.T) {
	skills := findSkills("We use Google Cloud and golang. Experience with c++ required.")
	assert.Contains(t, skills, "golang")
	assert.Contains(t, skills, "c++")
	assert.NotContains(t, skills, "go", "go must not match inside google")
}

func TestFindResponsibilities(t *testing.T) {
	text := `- Short
- Design and build backend services
* Operate production infrastructure
2. Partner with product managers on roadmaps`

	resp := findResponsibilities(text)
	assert.NotContains(t, resp, "Short", "entries of 10 characters or fewer dropped")
	assert.Contains(t, resp, "Design and build backend services")
	assert.Contains(t, resp, "Operate production infrastructure")
	assert.Contains(t, resp, "Partner with product managers on roadmaps")
}

func TestClassifyExperienceLevel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Senior keyword", "Senior Software Engineer", "Senior"},
		{"Years threshold", "requires 7+ years of experience", "Senior"},
		{"Senior wins over junior mention", "Senior role, will mentor junior engineers", "Senior"},
		{"Entry level", "entry-level position for new grads", "Entry Level"},
		{"Mid level", "mid-level engineer, 3-5 years experience", "Mid Level"},
		{"No signal", "an engineering role", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyExperienceLevel(tt.text))
		})
	}
}
