// Package registry provides the static job registry: a read-only mapping
// from category name to pre-vetted posting URLs. The registry is loaded and
// validated once at startup and never mutated, so concurrent pipeline runs
// may read it freely.
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// DefaultKey is the registry entry used for demo mode and as the terminal
// selection fallback. Every registry must contain it.
const DefaultKey = "default"

//go:embed job_map.json
var embeddedJobMap []byte

// Entry holds one category's tag list and its ordered posting URLs
// (first = primary, second = backup).
type Entry struct {
	Tags []string `json:"tags" validate:"required,min=1,dive,min=1"`
	URLs []string `json:"urls" validate:"dive,url"`
}

// Registry maps category names to entries.
type Registry struct {
	entries map[string]Entry
}

// Load parses and validates a registry from raw JSON.
func Load(raw []byte) (*Registry, error) {
	var entries map[string]Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse job registry: %w", err)
	}

	if _, ok := entries[DefaultKey]; !ok {
		return nil, fmt.Errorf("job registry is missing the %q entry", DefaultKey)
	}

	v := validator.New()
	for name, entry := range entries {
		if err := v.Struct(entry); err != nil {
			return nil, fmt.Errorf("invalid job registry entry %q: %w", name, err)
		}
	}

	return &Registry{entries: entries}, nil
}

// LoadEmbedded loads the registry shipped with the binary.
func LoadEmbedded() (*Registry, error) {
	return Load(embeddedJobMap)
}

// Lookup returns the entry for a category.
func (r *Registry) Lookup(category string) (Entry, bool) {
	entry, ok := r.entries[category]
	return entry, ok
}

// Default returns the default entry.
func (r *Registry) Default() Entry {
	return r.entries[DefaultKey]
}

// Categories returns all non-default category names in sorted order, giving
// deterministic iteration for fuzzy matching.
func (r *Registry) Categories() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		if name == DefaultKey {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// URLPair derives the (primary, backup) pair from an entry: primary is the
// first URL, backup the second or the primary repeated; an empty URL list
// yields two empty strings.
func (e Entry) URLPair() (string, string) {
	if len(e.URLs) == 0 {
		return "", ""
	}
	primary := e.URLs[0]
	if len(e.URLs) > 1 {
		return primary, e.URLs[1]
	}
	return primary, primary
}
