// Package normalize provides the token-level text and skill cleanup shared
// by every pipeline stage. All functions are pure.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxSkills caps every normalized skill list.
const MaxSkills = 10

// MaxTextLength caps preprocessed resume text, bounding the cost of
// downstream generation calls.
const MaxTextLength = 8000

// boundaryWindow is how far back from the truncation point a newline or
// space is still worth cutting at instead of severing mid-word.
const boundaryWindow = 200

var (
	bulletRe     = regexp.MustCompile(`(?m)^[ \t]*[•\-*+][ \t]*`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// Skills normalizes a raw skill list: lowercase, trim, strip a trailing
// .js/.jsx suffix, drop all whitespace and hyphens/underscores, discard
// empties, deduplicate keeping first-seen order, and cap at MaxSkills.
func Skills(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, skill := range raw {
		s := strings.ToLower(strings.TrimSpace(skill))
		s = strings.TrimSuffix(s, ".jsx")
		s = strings.TrimSuffix(s, ".js")
		s = strings.Join(strings.Fields(s), "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == MaxSkills {
			break
		}
	}
	return out
}

// PreprocessText cleans raw resume text before it is sent to the delegated
// extraction call: Unicode compatibility normalization, canonical "- "
// bullets, whitespace collapse, and a bounded truncation that prefers a
// nearby word or line boundary over a blind cut.
func PreprocessText(raw string) string {
	text := norm.NFKC.String(raw)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = bulletRe.ReplaceAllString(text, "- ")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	return truncateAtBoundary(text, MaxTextLength)
}

// truncateAtBoundary cuts text to at most limit runes. If a newline or space
// falls within boundaryWindow runes of the cut point, the cut moves back to
// it (trimming trailing whitespace); otherwise the blind cut stands.
func truncateAtBoundary(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	cut := runes[:limit]
	boundary := -1
	for i := limit - 1; i >= 0; i-- {
		if cut[i] == '\n' || cut[i] == ' ' {
			boundary = i
			break
		}
	}
	if boundary > limit-boundaryWindow {
		return strings.TrimRight(string(cut[:boundary]), " \t\n")
	}
	return string(cut)
}

// CountWords returns the number of maximal non-whitespace runs in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ValidateWordCount reports whether the word count of text lies in
// [min, max] inclusive.
func ValidateWordCount(text string, min, max int) bool {
	n := CountWords(text)
	return n >= min && n <= max
}
