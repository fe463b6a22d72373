package pipeline

import (
	"github.com/jonathan/jobmatch/internal/extractor"
	"github.com/jonathan/jobmatch/internal/types"
)

// FallbackReason records which condition triggered the canned fallback.
type FallbackReason string

const (
	ReasonTimeout           FallbackReason = "timeout"
	ReasonExecutionError    FallbackReason = "execution_error"
	ReasonExtractionFailure FallbackReason = "extraction_failure"
)

// FallbackScore is the match score of the canned fallback record.
const FallbackScore = 82

// FallbackRecord returns the canned record delivered when the pipeline
// cannot complete normally. The triggering condition is noted in _debug,
// which callers strip before delivery.
func FallbackRecord(reason FallbackReason, detail string) *types.FinalRecord {
	if len(detail) > 100 {
		detail = detail[:100]
	}
	rec := types.NewFinalRecord()
	rec.MatchScore = types.IntPtr(FallbackScore)
	rec.ScoreBreakdown = "Fallback mode activated: " + string(reason)
	rec.HowToImprove = []string{"Review your resume for technical skill alignment"}
	rec.OptimizedSummary = "Summary unavailable due to fallback mode."
	rec.CoverLetter = "Cover letter unavailable due to fallback mode."
	rec.RecruiterMessage = "Message unavailable due to fallback mode."
	rec.JobTitle = "Software Engineer"
	rec.Company = "Vercel"
	rec.JobURL = extractor.DefaultJobURL
	rec.Debug = map[string]any{
		"fallback_mode": true,
		"reason":        string(reason),
	}
	if detail != "" {
		rec.Debug["detail"] = detail
	}
	return rec
}
