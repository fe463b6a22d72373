// Package types provides type definitions for the structured records passed
// between pipeline stages.
package types

// ResumeRecord represents a structured resume extracted from raw text.
type ResumeRecord struct {
	Name              string      `json:"name"`
	YearsOfExperience int         `json:"years_of_experience"`
	CurrentTitle      string      `json:"current_title"`
	Skills            []string    `json:"skills"`
	Education         []string    `json:"education"`
	WorkHistory       []WorkEntry `json:"work_history"`
}

// WorkEntry represents one position in a resume's work history.
type WorkEntry struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Points  []string `json:"points"`
}

// JobRecord represents a structured job posting derived from an ATS page.
type JobRecord struct {
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	Skills           []string `json:"skills"`
	Responsibilities []string `json:"responsibilities"`
	ExperienceLevel  string   `json:"experience_level"`
	JobURL           string   `json:"job_url"`
}

// FinalRecord is the terminal artifact returned to the caller: the match
// assessment plus the generated application text.
//
// MatchScore is nil when the record signals a terminal parse failure; Error
// is set only on that failure record and is never present on a
// schema-validated result. Debug carries internal diagnostics and is
// stripped before external delivery.
type FinalRecord struct {
	MatchScore       *int           `json:"match_score"`
	ScoreBreakdown   string         `json:"score_breakdown"`
	MissingSkills    []string       `json:"missing_skills"`
	Strengths        []string       `json:"strengths"`
	HowToImprove     []string       `json:"how_to_improve"`
	OptimizedSummary string         `json:"optimized_summary"`
	CoverLetter      string         `json:"cover_letter"`
	RecruiterMessage string         `json:"recruiter_message"`
	JobTitle         string         `json:"job_title"`
	Company          string         `json:"company"`
	JobURL           string         `json:"job_url"`
	Debug            map[string]any `json:"_debug,omitempty"`
	Error            string         `json:"error,omitempty"`
}

// IsError reports whether the record signals a terminal parse failure rather
// than a completed (or fallback) assessment.
func (r *FinalRecord) IsError() bool {
	return r.Error != ""
}

// NewFinalRecord returns a FinalRecord with every list field initialized so
// the record marshals to empty arrays rather than nulls.
func NewFinalRecord() *FinalRecord {
	return &FinalRecord{
		MissingSkills: []string{},
		Strengths:     []string{},
		HowToImprove:  []string{},
	}
}

// IntPtr returns a pointer to v, for populating MatchScore.
func IntPtr(v int) *int {
	return &v
}
