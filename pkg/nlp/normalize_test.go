package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "Hello, JARVIS!!",
			expected: "hello jarvis",
		},
		{
			name:     "collapses whitespace runs",
			input:    "  open   you  tube  ",
			expected: "open you tube",
		},
		{
			name:     "keeps digits and underscores",
			input:    "what_is 42?",
			expected: "what_is 42",
		},
		{
			name:     "folds diacritics",
			input:    "café Müller",
			expected: "cafe muller",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "?!...,;",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, JARVIS!!",
		"Open YouTube",
		"What's the time?",
		"  spaced   out  ",
		"tell me about Elon Musk",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", input)
	}
}
