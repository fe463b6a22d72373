package selector

import (
	"strings"

	"github.com/jonathan/jobmatch/internal/registry"
	"github.com/jonathan/jobmatch/internal/types"
)

// Weights for where a category keyword is found in the resume.
const (
	titleWeight = 3
	skillWeight = 2
	roleWeight  = 2
)

// inferThreshold is the minimum score for an inferred category to be
// trusted over the default entry.
const inferThreshold = 2

// categoryKeywords drives resume-based inference for the fixed categories
// the selector understands.
var categoryKeywords = map[string][]string{
	"data":    {"data", "sql", "etl", "analytics", "spark", "hadoop", "pandas", "warehouse"},
	"python":  {"python", "django", "flask", "fastapi"},
	"backend": {"backend", "api", "server", "microservices", "go", "java", "node"},
}

// inferOrder fixes iteration order so ties resolve deterministically.
var inferOrder = []string{"data", "python", "backend"}

// InferCategoryFromResume scores the fixed categories against the parsed
// resume, weighting title matches over skill and work-role matches, and
// returns the best category when its score clears the threshold. Used when
// the job query is empty or vague. Returns "" when nothing qualifies or the
// category is absent from the registry.
func InferCategoryFromResume(resume *types.ResumeRecord, reg *registry.Registry) string {
	if resume == nil {
		return ""
	}

	title := strings.ToLower(resume.CurrentTitle)
	skills := make([]string, len(resume.Skills))
	for i, s := range resume.Skills {
		skills[i] = strings.ToLower(s)
	}
	roles := make([]string, len(resume.WorkHistory))
	for i, w := range resume.WorkHistory {
		roles[i] = strings.ToLower(w.Role)
	}

	best := ""
	bestScore := 0
	for _, category := range inferOrder {
		if _, ok := reg.Lookup(category); !ok {
			continue
		}
		score := 0
		for _, kw := range categoryKeywords[category] {
			if strings.Contains(title, kw) {
				score += titleWeight
			}
			for _, skill := range skills {
				if strings.Contains(skill, kw) {
					score += skillWeight
					break
				}
			}
			for _, role := range roles {
				if strings.Contains(role, kw) {
					score += roleWeight
					break
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = category
		}
	}

	if bestScore < inferThreshold {
		return ""
	}
	return best
}
