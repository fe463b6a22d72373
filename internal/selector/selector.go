// Package selector implements the deterministic job selection stage: a
// registry lookup by demo prefix, exact category name, tag fuzzy match, or
// default fallback. It performs no I/O and never fails.
package selector

import (
	"strings"

	"github.com/jonathan/jobmatch/internal/registry"
)

// DemoPrefix routes a query straight to the default registry entry.
const DemoPrefix = "demo:"

// semanticBonus is added to a category's fuzzy score when a role trigger
// word in the query is associated with that category.
const semanticBonus = 2

// semanticTriggers associates role words with the categories they imply.
var semanticTriggers = map[string][]string{
	"developer":  {"backend", "frontend", "python"},
	"engineer":   {"backend", "data", "devops"},
	"analyst":    {"data"},
	"programmer": {"python"},
}

// SelectJob resolves a query against the registry and returns the selected
// entry's (primary, backup) URL pair. Priority: demo prefix, exact category
// match, fuzzy tag match, default entry.
func SelectJob(query string, reg *registry.Registry) (string, string) {
	trimmed := strings.TrimSpace(query)
	lowered := strings.ToLower(trimmed)

	if strings.HasPrefix(lowered, DemoPrefix) {
		return reg.Default().URLPair()
	}

	if entry, ok := reg.Lookup(lowered); ok {
		return entry.URLPair()
	}

	if category := fuzzyMatch(lowered, reg); category != "" {
		entry, _ := reg.Lookup(category)
		return entry.URLPair()
	}

	return reg.Default().URLPair()
}

// fuzzyMatch scores every non-default category against the query's word set
// and returns the best-scoring category, or "" when nothing scores above
// zero. A category whose own name appears in the query wins immediately.
// Categories are walked in sorted order, so ties keep the lexicographically
// first of the highest scorers.
func fuzzyMatch(loweredQuery string, reg *registry.Registry) string {
	queryWords := wordSet(loweredQuery)
	if len(queryWords) == 0 {
		return ""
	}

	best := ""
	bestScore := 0
	for _, category := range reg.Categories() {
		if queryWords[category] {
			return category
		}

		entry, _ := reg.Lookup(category)
		score := 0
		tagWords := make(map[string]bool)
		for _, tag := range entry.Tags {
			for word := range wordSet(strings.ToLower(tag)) {
				tagWords[word] = true
			}
		}
		for word := range queryWords {
			if tagWords[word] {
				score++
			}
		}
		for trigger, categories := range semanticTriggers {
			if !queryWords[trigger] {
				continue
			}
			for _, c := range categories {
				if c == category {
					score += semanticBonus
					break
				}
			}
		}

		if score > bestScore {
			bestScore = score
			best = category
		}
	}

	return best
}

func wordSet(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		words[w] = true
	}
	return words
}
