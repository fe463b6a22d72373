package analyzer

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/normalize"
	"github.com/jonathan/jobmatch/internal/types"
)

const (
	maxSummarySentences   = 3
	maxRecruiterSentences = 2

	coverLetterMaxWords   = 340
	coverLetterTruncateAt = 320
)

var (
	intRe      = regexp.MustCompile(`-?\d+`)
	sentenceRe = regexp.MustCompile(`[.!?]`)
)

// Writer runs the delegated generation calls of the analysis stage.
type Writer struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewWriter creates a Writer on the standard model tier.
func NewWriter(client llm.Client) *Writer {
	return &Writer{client: client, tier: llm.TierStandard}
}

// ExperienceScore asks the model to rate experience fit as a single integer.
// The response is scanned for the first integer substring, clamped into
// [0,10]. A response with no integer is an error for the whole stage.
func (w *Writer) ExperienceScore(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord) (int, error) {
	prompt := fmt.Sprintf(`Rate how well this candidate's experience fits the job on a scale of 0 to 10.
Respond with a single integer only. No explanation.

Candidate: %s, %d years of experience as %s.
Job: %s at %s (%s).`,
		resume.Name, resume.YearsOfExperience, resume.CurrentTitle,
		job.JobTitle, job.Company, job.ExperienceLevel)

	resp, err := w.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return 0, fmt.Errorf("experience score call: %w", err)
	}
	m := intRe.FindString(resp)
	if m == "" {
		return 0, fmt.Errorf("no integer in experience score response %q", resp)
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("parse experience score %q: %w", m, err)
	}
	if n < 0 {
		n = 0
	}
	if n > 10 {
		n = 10
	}
	return n, nil
}

// GenerateSummary produces the optimized resume summary, trimmed to at most
// three sentences.
func (w *Writer) GenerateSummary(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord, score int) (string, error) {
	prompt := fmt.Sprintf(`Write a 2-3 sentence professional summary for this candidate, tailored to the job below.
Plain text only, no headers or bullet points.

Candidate: %s, %s, %d years of experience. Skills: %s.
Job: %s at %s. Match score: %d/100.`,
		resume.Name, resume.CurrentTitle, resume.YearsOfExperience, strings.Join(resume.Skills, ", "),
		job.JobTitle, job.Company, score)

	text, err := w.client.GenerateContent(ctx, prompt, w.tier)
	if err != nil {
		return "", fmt.Errorf("summary call: %w", err)
	}
	return LimitSentences(text, maxSummarySentences), nil
}

// GenerateCoverLetter produces the cover letter, enforcing the 340 word
// ceiling after generation.
func (w *Writer) GenerateCoverLetter(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord, score int) (string, error) {
	prompt := fmt.Sprintf(`Write a cover letter of 280-320 words for this application.
End with a call-to-action sentence. Plain text only.

Candidate: %s, %s, %d years of experience. Skills: %s.
Job: %s at %s.`,
		resume.Name, resume.CurrentTitle, resume.YearsOfExperience, strings.Join(resume.Skills, ", "),
		job.JobTitle, job.Company)

	text, err := w.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("cover letter call: %w", err)
	}
	return LimitCoverLetter(text), nil
}

// GenerateRecruiterMessage produces a short outreach message, trimmed to at
// most two sentences.
func (w *Writer) GenerateRecruiterMessage(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord, score int) (string, error) {
	prompt := fmt.Sprintf(`Write a 1-2 sentence message to a recruiter expressing interest in the role below.
Plain text only.

Candidate: %s, %s. Job: %s at %s.`,
		resume.Name, resume.CurrentTitle, job.JobTitle, job.Company)

	text, err := w.client.GenerateContent(ctx, prompt, w.tier)
	if err != nil {
		return "", fmt.Errorf("recruiter message call: %w", err)
	}
	return LimitSentences(text, maxRecruiterSentences), nil
}

// LimitSentences truncates text to the first max sentences when it exceeds
// that count; shorter text is returned unchanged. Sentences are split on
// '.', '!' and '?' with empty fragments discarded, and the truncated form
// is rejoined with ". " plus a trailing period.
func LimitSentences(text string, max int) string {
	text = strings.TrimSpace(text)
	parts := sentenceRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) <= max {
		return text
	}
	return strings.Join(sentences[:max], ". ") + "."
}

// LimitCoverLetter enforces the hard word ceiling: text over 340 words is
// cut to the first 320 with terminal punctuation appended if missing.
// Under-length text is accepted as-is.
func LimitCoverLetter(text string) string {
	text = strings.TrimSpace(text)
	if normalize.CountWords(text) <= coverLetterMaxWords {
		return text
	}
	words := strings.Fields(text)
	truncated := strings.Join(words[:coverLetterTruncateAt], " ")
	if !strings.HasSuffix(truncated, ".") && !strings.HasSuffix(truncated, "!") && !strings.HasSuffix(truncated, "?") {
		truncated += "."
	}
	return truncated
}
