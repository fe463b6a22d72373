// Package parser turns raw resume text into a validated ResumeRecord using
// a single LLM extraction call with one bounded retry.
package parser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/normalize"
	"github.com/jonathan/jobmatch/internal/schemas"
	"github.com/jonathan/jobmatch/internal/types"
)

// maxAttempts bounds the extraction loop: one call plus one retry.
const maxAttempts = 2

// TerminalError marks parse failure after all attempts. The pipeline maps
// it to an error record rather than continuing with downstream stages.
type TerminalError struct {
	Attempts int
	Cause    error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("resume parsing failed after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *TerminalError) Unwrap() error { return e.Cause }

// Parser extracts structured resume data via an LLM client.
type Parser struct {
	client llm.Client
	tier   llm.ModelTier
}

// New creates a Parser on the lite model tier.
func New(client llm.Client) *Parser {
	return &Parser{client: client, tier: llm.TierLite}
}

// Parse normalizes the resume text, prompts the model for structured JSON
// and validates the result. The model is called at most maxAttempts times;
// exhausting them returns a TerminalError.
func (p *Parser) Parse(ctx context.Context, resumeText string) (*types.ResumeRecord, error) {
	cleaned := normalize.PreprocessText(resumeText)
	prompt := buildPrompt(cleaned)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		rec, err := p.parseOnce(ctx, prompt)
		if err == nil {
			return rec, nil
		}
		lastErr = err
	}
	return nil, &TerminalError{Attempts: maxAttempts, Cause: lastErr}
}

func (p *Parser) parseOnce(ctx context.Context, prompt string) (*types.ResumeRecord, error) {
	raw, err := p.client.GenerateJSON(ctx, prompt, p.tier)
	if err != nil {
		return nil, fmt.Errorf("resume extraction call: %w", err)
	}

	jsonStr := llm.FirstJSONObject(llm.CleanJSONBlock(raw))
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}

	rec, err := buildRecord(fields)
	if err != nil {
		return nil, err
	}
	normalizeRecord(rec)

	if err := schemas.ValidateResumeRecord(rec); err != nil {
		return nil, fmt.Errorf("validate extracted resume: %w", err)
	}
	return rec, nil
}

// buildRecord decodes the known top-level fields, substituting the zero
// default for any that are missing. Unknown keys are dropped so the strict
// schema does not reject otherwise usable output; a present-but-mistyped
// field is a schema violation and fails the attempt.
func buildRecord(fields map[string]json.RawMessage) (*types.ResumeRecord, error) {
	rec := &types.ResumeRecord{
		Skills:      []string{},
		Education:   []string{},
		WorkHistory: []types.WorkEntry{},
	}
	if err := decode(fields, "name", &rec.Name); err != nil {
		return nil, err
	}
	if err := decode(fields, "years_of_experience", &rec.YearsOfExperience); err != nil {
		return nil, err
	}
	if err := decode(fields, "current_title", &rec.CurrentTitle); err != nil {
		return nil, err
	}
	if err := decode(fields, "skills", &rec.Skills); err != nil {
		return nil, err
	}
	if err := decode(fields, "education", &rec.Education); err != nil {
		return nil, err
	}
	if err := decode(fields, "work_history", &rec.WorkHistory); err != nil {
		return nil, err
	}
	return rec, nil
}

func decode(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode resume field %q: %w", key, err)
	}
	return nil
}

// normalizeRecord applies skill normalization and per-entry bullet caps,
// and repairs nil slices left by mistyped model output.
func normalizeRecord(rec *types.ResumeRecord) {
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	if rec.Education == nil {
		rec.Education = []string{}
	}
	if rec.WorkHistory == nil {
		rec.WorkHistory = []types.WorkEntry{}
	}
	rec.Skills = normalize.Skills(rec.Skills)
	for i := range rec.WorkHistory {
		if rec.WorkHistory[i].Points == nil {
			rec.WorkHistory[i].Points = []string{}
		}
		if len(rec.WorkHistory[i].Points) > 4 {
			rec.WorkHistory[i].Points = rec.WorkHistory[i].Points[:4]
		}
	}
	if rec.YearsOfExperience < 0 {
		rec.YearsOfExperience = 0
	}
}

// NewErrorRecord builds the delivery record for a terminal parse failure:
// null match score, every other field at its empty default, and the failure
// message in the error field.
func NewErrorRecord(err error) *types.FinalRecord {
	rec := types.NewFinalRecord()
	rec.MatchScore = nil
	rec.Error = err.Error()
	return rec
}

func buildPrompt(resumeText string) string {
	return fmt.Sprintf(`You are a resume parser. Extract structured data from the resume below.

Return ONLY a JSON object with exactly these keys:
{
  "name": "candidate full name",
  "years_of_experience": 0,
  "current_title": "most recent job title",
  "skills": ["up to 10 technical skills"],
  "education": ["degrees and institutions"],
  "work_history": [
    {"company": "", "role": "", "start": "", "end": "", "points": ["up to 4 bullet points"]}
  ]
}

Rules:
- years_of_experience is an integer, your best estimate from the work history.
- skills holds at most 10 entries, lowercase technology names.
- points holds at most 4 entries per job.
- Use "" or [] for anything the resume does not state. No additional keys.

Resume:
%s`, resumeText)
}
