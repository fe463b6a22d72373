package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain JSON", `{"key": "value"}`, `{"key": "value"}`},
		{"JSON fence", "```json\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"Generic fence", "```\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"Fence with language identifier", "```javascript\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"Surrounding whitespace", "  \n{\"key\": 1}\n  ", `{"key": 1}`},
		{"Fence on one line", "```{\"a\": 1}```", `{"a": 1}`},
		{"Empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Bare object", `{"a": 1}`, `{"a": 1}`},
		{"Leading prose", `Here you go: {"a": 1}`, `{"a": 1}`},
		{"Trailing prose", `{"a": 1} hope that helps`, `{"a": 1}`},
		{"Nested objects", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`},
		{"Braces inside strings", `{"a": "}{"}`, `{"a": "}{"}`},
		{"Escaped quotes", `{"a": "say \"hi\""}`, `{"a": "say \"hi\""}`},
		{"Two objects takes first", `{"a": 1} {"b": 2}`, `{"a": 1}`},
		{"No object", "plain text", ""},
		{"Unbalanced", `{"a": 1`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstJSONObject(tt.input))
		})
	}
}
