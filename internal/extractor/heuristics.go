package extractor

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultJobTitle = "Software Engineer"
	defaultCompany  = "Company"

	maxSkills            = 10
	maxResponsibilities  = 6
	minResponsibilityLen = 10
)

var (
	titleLabelRe   = regexp.MustCompile(`(?im)^[ \t]*(?:job title|position|role|title)[ \t]*[:\-][ \t]*(.+)$`)
	hiringRe       = regexp.MustCompile(`(?i)\b(?:hiring|seeking)(?:\s+(?:a|an))?\s+([A-Za-z][A-Za-z+#./ -]{2,60})`)
	companyLabelRe = regexp.MustCompile(`(?im)^[ \t]*(?:company|employer|organization)[ \t]*[:\-][ \t]*(.+)$`)
	bulletLineRe   = regexp.MustCompile(`(?m)^[ \t]*(?:[•\-*+]|\d+[.)])[ \t]+(.+)$`)

	titleCaser = cases.Title(language.English)
)

// skillVocabulary is the fixed set of technology names recognized in
// posting text. Matching is case-insensitive whole-text containment.
var skillVocabulary = []string{
	"python", "java", "javascript", "typescript", "go", "golang", "rust",
	"c++", "c#", "ruby", "php", "swift", "kotlin", "scala",
	"react", "angular", "vue", "node", "django", "flask", "spring",
	"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"aws", "gcp", "azure", "docker", "kubernetes", "terraform",
	"kafka", "spark", "airflow", "pandas", "numpy", "tensorflow", "pytorch",
	"git", "linux", "graphql", "rest", "grpc", "ci/cd",
}

// findJobTitle looks for a labeled title line first, then a "hiring a ..." or
// "seeking a ..." phrase, before settling on the generic default.
func findJobTitle(text string) string {
	if m := titleLabelRe.FindStringSubmatch(text); m != nil {
		if title := cleanLine(m[1]); title != "" {
			return title
		}
	}
	if m := hiringRe.FindStringSubmatch(text); m != nil {
		if title := trimAtStopWord(cleanLine(m[1])); title != "" {
			return title
		}
	}
	return defaultJobTitle
}

// findCompany prefers the lever.co URL path segment, then a labeled line.
func findCompany(text, urlStr string) string {
	if u, err := url.Parse(urlStr); err == nil && strings.Contains(strings.ToLower(u.Hostname()), "lever.co") {
		segs := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(segs) > 0 && segs[0] != "" {
			return titleCaser.String(segs[0])
		}
	}
	if m := companyLabelRe.FindStringSubmatch(text); m != nil {
		if company := cleanLine(m[1]); company != "" {
			return company
		}
	}
	return defaultCompany
}

// findSkills scans the posting for known technology names, deduplicated in
// vocabulary order and capped at maxSkills.
func findSkills(text string) []string {
	lower := strings.ToLower(text)
	skills := []string{}
	seen := make(map[string]bool)
	for _, skill := range skillVocabulary {
		if len(skills) >= maxSkills {
			break
		}
		if seen[skill] || !containsSkill(lower, skill) {
			continue
		}
		seen[skill] = true
		skills = append(skills, skill)
	}
	return skills
}

// containsSkill matches on word boundaries for alphanumeric names so that
// "go" does not match inside "google". Names with punctuation (c++, ci/cd)
// use plain containment.
func containsSkill(lower, skill string) bool {
	if strings.ContainsAny(skill, "+#/.") {
		return strings.Contains(lower, skill)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
	return re.MatchString(lower)
}

// findResponsibilities collects bullet or numbered lines longer than
// minResponsibilityLen characters, capped at maxResponsibilities.
func findResponsibilities(text string) []string {
	resp := []string{}
	for _, m := range bulletLineRe.FindAllStringSubmatch(text, -1) {
		line := cleanLine(m[1])
		if len(line) <= minResponsibilityLen {
			continue
		}
		resp = append(resp, line)
		if len(resp) >= maxResponsibilities {
			break
		}
	}
	return resp
}

var (
	seniorMarkers = []string{"senior", "staff", "principal", "lead ", "tech lead", "5+ years", "6+ years", "7+ years", "8+ years", "10+ years"}
	entryMarkers  = []string{"junior", "entry level", "entry-level", "intern", "new grad", "graduate", "0-2 years", "0–2 years"}
	midMarkers    = []string{"mid level", "mid-level", "intermediate", "2-4 years", "3-5 years", "2+ years", "3+ years"}
)

// classifyExperienceLevel checks senior markers before entry markers so that
// senior postings mentioning junior mentorship classify correctly. Returns
// the empty string when no marker matches.
func classifyExperienceLevel(text string) string {
	lower := strings.ToLower(text)
	for _, marker := range seniorMarkers {
		if strings.Contains(lower, marker) {
			return "Senior"
		}
	}
	for _, marker := range entryMarkers {
		if strings.Contains(lower, marker) {
			return "Entry Level"
		}
	}
	for _, marker := range midMarkers {
		if strings.Contains(lower, marker) {
			return "Mid Level"
		}
	}
	return ""
}

func cleanLine(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), ".,;:!"))
}

// trimAtStopWord cuts a captured title phrase at connective words that mark
// the end of the role name ("seeking a Backend Engineer to join...").
func trimAtStopWord(s string) string {
	words := strings.Fields(s)
	stopWords := map[string]bool{"to": true, "who": true, "for": true, "at": true, "in": true, "with": true, "that": true}
	for i, w := range words {
		if stopWords[strings.ToLower(w)] {
			words = words[:i]
			break
		}
	}
	return strings.Join(words, " ")
}
