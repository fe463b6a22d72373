// Package analyzer computes the resume-to-job match score and generates the
// written outputs of the final record. Scoring is pure arithmetic; only the
// experience score and the prose outputs go through the LLM.
package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/jobmatch/internal/normalize"
)

// Weights of the final score formula.
const (
	skillWeight      = 40.0
	experienceWeight = 40.0
	educationWeight  = 20.0

	// educationPartial applies when no degree keyword is found.
	educationPartial = 0.6
)

var educationKeywords = []string{"bachelor", "master", "b.s.", "m.s.", "bs", "ms", "ba", "ma"}

// SkillOverlap returns the fraction of the job's normalized skills that also
// appear in the resume's normalized skills. Zero when the job lists none.
func SkillOverlap(resumeSkills, jobSkills []string) float64 {
	job := normalize.Skills(jobSkills)
	if len(job) == 0 {
		return 0.0
	}
	have := make(map[string]bool)
	for _, s := range normalize.Skills(resumeSkills) {
		have[s] = true
	}
	matched := 0
	for _, s := range job {
		if have[s] {
			matched++
		}
	}
	return float64(matched) / float64(len(job))
}

// EducationMatch reports whether any degree keyword appears in the
// lowercased, space-joined education entries.
func EducationMatch(education []string) bool {
	joined := strings.ToLower(strings.Join(education, " "))
	for _, kw := range educationKeywords {
		if strings.Contains(joined, kw) {
			return true
		}
	}
	return false
}

// FinalScore combines the three signals: 40% skills, 40% experience,
// 20% education (partial credit without a degree). Clamped to [0,100].
func FinalScore(skillOverlap float64, experienceScore int, eduMatch bool) int {
	eduFactor := educationPartial
	if eduMatch {
		eduFactor = 1.0
	}
	raw := skillWeight*skillOverlap +
		experienceWeight*(float64(experienceScore)/10.0) +
		educationWeight*eduFactor
	score := int(math.Round(raw))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// MissingSkills returns the job skills the resume lacks, filtered to those
// the posting emphasizes: mentioned at least twice in the combined
// skills-plus-responsibilities text, or named after a requirement phrase.
func MissingSkills(resumeSkills, jobSkills, responsibilities []string) []string {
	have := make(map[string]bool)
	for _, s := range normalize.Skills(resumeSkills) {
		have[s] = true
	}

	jobText := strings.ToLower(strings.Join(jobSkills, " ") + " " + strings.Join(responsibilities, " "))

	missing := []string{}
	for _, skill := range normalize.Skills(jobSkills) {
		if have[skill] {
			continue
		}
		if strings.Count(jobText, skill) >= 2 || requiredSkillPattern(skill).MatchString(jobText) {
			missing = append(missing, skill)
		}
	}
	return missing
}

func requiredSkillPattern(skill string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)(required|must have|experience with|need).*?` + regexp.QuoteMeta(skill))
}

// Strengths builds the rule-based strengths list from the scoring signals.
func Strengths(skillOverlap float64, yearsOfExperience int, eduMatch bool) []string {
	strengths := []string{}
	switch {
	case skillOverlap >= 0.7:
		strengths = append(strengths, "Strong alignment between your technical skills and the role's requirements")
	case skillOverlap >= 0.4:
		strengths = append(strengths, "Good foundation of skills relevant to this role")
	}
	switch {
	case yearsOfExperience >= 5:
		strengths = append(strengths, fmt.Sprintf("Extensive professional experience (%d years)", yearsOfExperience))
	case yearsOfExperience >= 2:
		strengths = append(strengths, fmt.Sprintf("Relevant professional experience (%d years)", yearsOfExperience))
	}
	if eduMatch {
		strengths = append(strengths, "Relevant educational background for this position")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Transferable skills applicable to this role")
	}
	return strengths
}

// Improvements builds the rule-based how-to-improve list.
func Improvements(missingSkills []string, skillOverlap float64) []string {
	suggestions := []string{}
	if len(missingSkills) > 0 {
		top := missingSkills
		if len(top) > 3 {
			top = top[:3]
		}
		suggestions = append(suggestions, fmt.Sprintf("Gain experience with %s to better match the role's requirements", strings.Join(top, ", ")))
	}
	if skillOverlap < 0.5 {
		suggestions = append(suggestions, "Develop additional skills relevant to this job's technology stack")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Tailor your resume bullet points to highlight measurable impact")
	}
	return suggestions
}
