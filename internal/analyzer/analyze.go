package analyzer

import (
	"context"
	"fmt"

	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/schemas"
	"github.com/jonathan/jobmatch/internal/types"
)

// Analyzer scores a resume against a job and writes the final outputs.
type Analyzer struct {
	writer *Writer
}

// New creates an Analyzer backed by the given LLM client.
func New(client llm.Client) *Analyzer {
	return &Analyzer{writer: NewWriter(client)}
}

// Analyze runs scoring and generation and assembles the final record. An
// error is returned only for delegate failures (experience score or prose
// generation); scoring itself cannot fail.
func (a *Analyzer) Analyze(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord) (*types.FinalRecord, error) {
	overlap := SkillOverlap(resume.Skills, job.Skills)
	eduMatch := EducationMatch(resume.Education)

	expScore, err := a.writer.ExperienceScore(ctx, resume, job)
	if err != nil {
		return nil, err
	}

	score := FinalScore(overlap, expScore, eduMatch)
	missing := MissingSkills(resume.Skills, job.Skills, job.Responsibilities)

	summary, err := a.writer.GenerateSummary(ctx, resume, job, score)
	if err != nil {
		return nil, err
	}
	coverLetter, err := a.writer.GenerateCoverLetter(ctx, resume, job, score)
	if err != nil {
		return nil, err
	}
	recruiterMsg, err := a.writer.GenerateRecruiterMessage(ctx, resume, job, score)
	if err != nil {
		return nil, err
	}

	rec := types.NewFinalRecord()
	rec.MatchScore = types.IntPtr(score)
	rec.ScoreBreakdown = fmt.Sprintf("Skills %.0f%% · Experience %d/10 · Education %s",
		overlap*100, expScore, eduLabel(eduMatch))
	rec.MissingSkills = missing
	rec.Strengths = Strengths(overlap, resume.YearsOfExperience, eduMatch)
	rec.HowToImprove = Improvements(missing, overlap)
	rec.OptimizedSummary = summary
	rec.CoverLetter = coverLetter
	rec.RecruiterMessage = recruiterMsg
	rec.JobTitle = job.JobTitle
	rec.Company = job.Company
	rec.JobURL = job.JobURL
	rec.Debug = map[string]any{
		"skill_overlap_ratio": overlap,
		"experience_score":    expScore,
		"edu_match":           eduMatch,
	}

	if err := schemas.ValidateFinalRecord(rec); err != nil {
		return minimalRecord(score, job), nil
	}
	return rec, nil
}

// minimalRecord keeps only the score and job identity when the assembled
// record fails validation, discarding all generated prose.
func minimalRecord(score int, job *types.JobRecord) *types.FinalRecord {
	rec := types.NewFinalRecord()
	rec.MatchScore = types.IntPtr(score)
	rec.JobTitle = job.JobTitle
	rec.Company = job.Company
	rec.JobURL = job.JobURL
	rec.Debug = map[string]any{}
	return rec
}

func eduLabel(match bool) string {
	if match {
		return "Match"
	}
	return "Partial"
}
