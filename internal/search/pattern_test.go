package search

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizePattern(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "single letter",
			query:    "a",
			expected: ".*?[Aa].*?",
		},
		{
			name:     "mixed case query",
			query:    "MyC",
			expected: ".*?[Mm].*?[Yy].*?[Cc].*?",
		},
		{
			name:     "digits alternate with themselves",
			query:    "a1",
			expected: ".*?[Aa].*?[11].*?",
		},
		{
			name:     "hyphen passes through",
			query:    "a-b",
			expected: ".*?[Aa].*?[--].*?[Bb].*?",
		},
		{
			name:     "punctuation and spaces are dropped",
			query:    "my class!",
			expected: ".*?[Mm].*?[Yy].*?[Cc].*?[Ll].*?[Aa].*?[Ss].*?[Ss].*?",
		},
		{
			name:     "all punctuation degenerates to match anything",
			query:    "!!!",
			expected: ".*?.*?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SynthesizePattern(tt.query))
		})
	}
}

func TestSynthesizePattern_MatchesInOrderCaseInsensitively(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		matches   bool
	}{
		{
			name:      "camel case candidate",
			query:     "myc",
			candidate: "MyClass",
			matches:   true,
		},
		{
			name:      "snake case candidate",
			query:     "myc",
			candidate: "my_car",
			matches:   true,
		},
		{
			name:      "arbitrary text between characters",
			query:     "myc",
			candidate: "xmxyxcx",
			matches:   true,
		},
		{
			name:      "characters out of order",
			query:     "myc",
			candidate: "cym",
			matches:   false,
		},
		{
			name:      "missing character",
			query:     "myc",
			candidate: "myra",
			matches:   false,
		},
		{
			name:      "upper case query against lower case candidate",
			query:     "MYC",
			candidate: "myclass",
			matches:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := regexp.Compile("^" + SynthesizePattern(tt.query) + "$")
			require.NoError(t, err)
			assert.Equal(t, tt.matches, re.MatchString(tt.candidate))
		})
	}
}
